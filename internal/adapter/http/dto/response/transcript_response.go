package response

import (
	"time"

	"vestapay/internal/domain/entities"
)

type TranscriptResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Operation string    `json:"operation"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTranscript(tr entities.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:        tr.ID,
		OrderID:   tr.OrderID,
		Operation: tr.Operation,
		Body:      tr.Body,
		CreatedAt: tr.CreatedAt,
	}
}

func FromTranscripts(trs []entities.Transcript) []TranscriptResponse {
	out := make([]TranscriptResponse, 0, len(trs))
	for _, tr := range trs {
		out = append(out, FromTranscript(tr))
	}
	return out
}
