package interfaces

import (
	"context"

	"wheelworks/internal/domain/entities"
)

// Attachment is a customer-supplied photo forwarded to the business email.
type Attachment struct {
	FileName string
	MIMEType string
	Content  []byte
}

// IQuoteMailer abstracts the email transport (e.g. SMTP via go-mail).
//
// Sends are fire-and-forget from the submission flow's perspective: a failed
// send is logged, never rolled into the HTTP response, and never retried.
type IQuoteMailer interface {
	SendBusinessAlert(ctx context.Context, q entities.Quote, photos []Attachment) error
	SendCustomerConfirmation(ctx context.Context, q entities.Quote) error
}
