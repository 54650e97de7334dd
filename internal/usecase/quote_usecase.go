package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidQuoteContact = errors.New("invalid quote contact details")
	ErrInvalidQuoteService = errors.New("invalid quote service selection")
	ErrInvalidQuoteStatus  = errors.New("invalid quote status")
)

// notifyTimeout bounds the background email dispatch after the HTTP response
// has already been written.
const notifyTimeout = 30 * time.Second

// SubmitQuoteCommand is the normalized intake payload, minus everything the
// server assigns (id, created_at, status).
type SubmitQuoteCommand struct {
	Name             string
	Email            string
	Phone            string
	Location         string
	Distance         *float64
	PreferredContact string
	Service          string
	ServiceTypes     []string
	WheelCount       *int
	WheelDetails     *entities.WheelDetails
	TyreDetails      *entities.TyreDetails
	Notes            string
	SubmittedAt      *time.Time
	Photos           []interfaces.Attachment
}

// IQuoteUseCase encapsulates quote intake and the dashboard's per-quote
// operations.
//
// Submit persists the quote and hands the notification off to a background
// dispatch; a notification failure never fails the submission.

type IQuoteUseCase interface {
	Submit(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	dispatcher INotificationDispatcher

	// dispatch decouples tests from the goroutine hand-off; defaults to
	// dispatchAsync.
	dispatch func(q entities.Quote, photos []interfaces.Attachment)
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, dispatcher INotificationDispatcher) *QuoteUseCase {
	u := &QuoteUseCase{repo: repo, dispatcher: dispatcher}
	u.dispatch = u.dispatchAsync
	return u
}

func (u *QuoteUseCase) Submit(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	cmd.Location = strings.TrimSpace(cmd.Location)
	cmd.Service = strings.TrimSpace(cmd.Service)

	if cmd.Name == "" || cmd.Email == "" || cmd.Phone == "" || cmd.Location == "" {
		log.Printf("[quote][usecase] submit rejected: missing contact details")
		return entities.Quote{}, ErrInvalidQuoteContact
	}
	// The service value itself is stored verbatim, known category or not;
	// analytics decides what to do with unknown categories.
	if cmd.Service == "" || len(cmd.ServiceTypes) == 0 {
		log.Printf("[quote][usecase] submit rejected: missing service selection")
		return entities.Quote{}, ErrInvalidQuoteService
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:               uuid.NewString(),
		Name:             cmd.Name,
		Email:            cmd.Email,
		Phone:            cmd.Phone,
		Location:         cmd.Location,
		Distance:         cmd.Distance,
		PreferredContact: cmd.PreferredContact,
		Service:          cmd.Service,
		ServiceTypes:     cmd.ServiceTypes,
		WheelCount:       cmd.WheelCount,
		WheelDetails:     cmd.WheelDetails,
		TyreDetails:      cmd.TyreDetails,
		HasPhotos:        len(cmd.Photos) > 0,
		PhotoCount:       len(cmd.Photos),
		Notes:            strings.TrimSpace(cmd.Notes),
		SubmittedAt:      cmd.SubmittedAt,
		CreatedAt:        now,
		Status:           entities.QuoteStatusPending,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] repository create failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] submit success quote_id=%s service=%s location=%q", created.ID, created.Service, created.Location)

	u.dispatch(created, cmd.Photos)

	return created, nil
}

// dispatchAsync hands the notification off without blocking the response.
// The submission is already durable at this point, so a failed dispatch is
// only logged.
func (u *QuoteUseCase) dispatchAsync(q entities.Quote, photos []interfaces.Attachment) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.dispatcher.DispatchQuoteReceived(ctx, q, photos); err != nil {
			log.Printf("[quote][notify] dispatch failed quote_id=%s err=%v", q.ID, err)
		}
	}()
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.IsValid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		log.Printf("[quote][usecase] status update failed quote_id=%s status=%s err=%v", id, status, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status update success quote_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
