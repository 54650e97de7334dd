package usecase

import (
	"context"
	"fmt"
	"log"

	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// INotificationDispatcher sends the two quote-received emails.
//
// Requested behavior:
//   - one business-facing alert (with the customer's photos attached)
//   - one customer-facing confirmation
//
// The two sends are independent and run concurrently; a failure on either
// side is reported to the caller but must not affect the other send.

type INotificationDispatcher interface {
	DispatchQuoteReceived(ctx context.Context, q entities.Quote, photos []interfaces.Attachment) error
}

type NotificationDispatcher struct {
	mailer interfaces.IQuoteMailer
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(mailer interfaces.IQuoteMailer) *NotificationDispatcher {
	return &NotificationDispatcher{mailer: mailer}
}

func (d *NotificationDispatcher) DispatchQuoteReceived(ctx context.Context, q entities.Quote, photos []interfaces.Attachment) error {
	if d.mailer == nil {
		log.Printf("[notify][dispatcher] mailer not configured; skipping quote_id=%s", q.ID)
		return nil
	}

	log.Printf("[notify][dispatcher] dispatch start quote_id=%s photos=%d", q.ID, len(photos))

	// Plain group, not WithContext: one failed send must not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		if err := d.mailer.SendBusinessAlert(ctx, q, photos); err != nil {
			return fmt.Errorf("business alert: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := d.mailer.SendCustomerConfirmation(ctx, q); err != nil {
			return fmt.Errorf("customer confirmation: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("notification failed: %w", err)
	}
	log.Printf("[notify][dispatcher] dispatch success quote_id=%s", q.ID)
	return nil
}
