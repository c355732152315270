package entities

import "time"

// Transcript is one scrubbed request/response exchange with the provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Body is stored after scrubbing only; raw transcripts never reach the
// repository.

type Transcript struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Operation string    `json:"operation"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
