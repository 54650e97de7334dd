package interfaces

import (
	"context"
	"time"

	"wheelworks/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The back-office must be able to:
//   - create a quote when the public wizard submits one
//   - fetch a quote by id for the dashboard detail view
//   - list the collection, optionally bounded by created_at, for analytics
//   - update the status of a quote by id (unconditional field write)

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	ListCreatedSince(ctx context.Context, cutoff time.Time) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
