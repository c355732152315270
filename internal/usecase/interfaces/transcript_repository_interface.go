package interfaces

import (
	"context"

	"vestapay/internal/domain/entities"
)

// ITranscriptRepository abstracts DynamoDB persistence for scrubbed provider
// transcripts.
type ITranscriptRepository interface {
	Create(ctx context.Context, tr entities.Transcript) (entities.Transcript, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transcript, error)
}
