package interfaces

import (
	"context"

	"vestapay/internal/domain/entities"
)

// IVestaGateway abstracts the provider adapter so use cases and tests never
// touch the network. Every operation is one request/response exchange with
// the processor; Verify is the composite authorize-then-reverse probe.
type IVestaGateway interface {
	Purchase(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Authorize(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Capture(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Refund(ctx context.Context, amount int64, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Void(ctx context.Context, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Verify(ctx context.Context, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
}
