package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vestapay/internal/domain/entities"
	"vestapay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidCard          = errors.New("invalid payment instrument")
	ErrMissingPaymentID     = errors.New("missing payment_id")
	ErrInvalidOrderID       = errors.New("invalid order_id")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// TranscriptScrubber redacts sensitive values from a raw provider transcript
// before it is stored. Wired to the gateway package's scrubber in routes.
type TranscriptScrubber func(string) string

// IPaymentUseCase exposes the canonical payment operations plus the
// transcript read model. Declined payments are not errors here: the failure
// PaymentResult is returned as-is so callers see one outcome shape.

type IPaymentUseCase interface {
	Purchase(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Authorize(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Capture(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Refund(ctx context.Context, amount int64, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Void(ctx context.Context, opts entities.TransactionOptions) (entities.PaymentResult, error)
	Verify(ctx context.Context, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error)
	ListTranscriptsByOrderID(ctx context.Context, orderID string) ([]entities.Transcript, error)
}

type PaymentUseCase struct {
	gateway     interfaces.IVestaGateway
	transcripts interfaces.ITranscriptRepository
	scrub       TranscriptScrubber
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IVestaGateway, transcripts interfaces.ITranscriptRepository, scrub TranscriptScrubber) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, transcripts: transcripts, scrub: scrub}
}

func (u *PaymentUseCase) Purchase(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	if err := u.checkGateway(); err != nil {
		return entities.PaymentResult{}, err
	}
	if err := validateCharge(amount, card); err != nil {
		return entities.PaymentResult{}, err
	}
	opts = ensureOrderID(opts)

	log.Printf("[payment][usecase] purchase start order_id=%s amount=%d", opts.OrderID, amount)
	result, err := u.gateway.Purchase(ctx, amount, card, opts)
	if err != nil {
		log.Printf("[payment][usecase] purchase failed order_id=%s err=%v", opts.OrderID, err)
		return entities.PaymentResult{}, err
	}
	result.OrderID = opts.OrderID
	u.recordTranscript(ctx, "purchase", opts.OrderID, result.Transcript)

	log.Printf("[payment][usecase] purchase done order_id=%s success=%t code=%q", opts.OrderID, result.Success, result.Code)
	return result, nil
}

func (u *PaymentUseCase) Authorize(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	if err := u.checkGateway(); err != nil {
		return entities.PaymentResult{}, err
	}
	if err := validateCharge(amount, card); err != nil {
		return entities.PaymentResult{}, err
	}
	opts = ensureOrderID(opts)

	log.Printf("[payment][usecase] authorize start order_id=%s amount=%d", opts.OrderID, amount)
	result, err := u.gateway.Authorize(ctx, amount, card, opts)
	if err != nil {
		log.Printf("[payment][usecase] authorize failed order_id=%s err=%v", opts.OrderID, err)
		return entities.PaymentResult{}, err
	}
	result.OrderID = opts.OrderID
	u.recordTranscript(ctx, "authorize", opts.OrderID, result.Transcript)

	log.Printf("[payment][usecase] authorize done order_id=%s success=%t code=%q", opts.OrderID, result.Success, result.Code)
	return result, nil
}

func (u *PaymentUseCase) Capture(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	if err := u.checkGateway(); err != nil {
		return entities.PaymentResult{}, err
	}
	if err := validateCharge(amount, card); err != nil {
		return entities.PaymentResult{}, err
	}
	if strings.TrimSpace(opts.PaymentID) == "" {
		return entities.PaymentResult{}, ErrMissingPaymentID
	}
	opts = ensureOrderID(opts)

	log.Printf("[payment][usecase] capture start order_id=%s payment_id=%s amount=%d", opts.OrderID, opts.PaymentID, amount)
	result, err := u.gateway.Capture(ctx, amount, card, opts)
	if err != nil {
		log.Printf("[payment][usecase] capture failed order_id=%s err=%v", opts.OrderID, err)
		return entities.PaymentResult{}, err
	}
	result.OrderID = opts.OrderID
	u.recordTranscript(ctx, "capture", opts.OrderID, result.Transcript)

	log.Printf("[payment][usecase] capture done order_id=%s success=%t code=%q", opts.OrderID, result.Success, result.Code)
	return result, nil
}

func (u *PaymentUseCase) Refund(ctx context.Context, amount int64, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	if err := u.checkGateway(); err != nil {
		return entities.PaymentResult{}, err
	}
	if amount <= 0 {
		return entities.PaymentResult{}, ErrInvalidAmount
	}
	if strings.TrimSpace(opts.PaymentID) == "" {
		return entities.PaymentResult{}, ErrMissingPaymentID
	}
	opts = ensureOrderID(opts)

	log.Printf("[payment][usecase] refund start order_id=%s payment_id=%s amount=%d", opts.OrderID, opts.PaymentID, amount)
	result, err := u.gateway.Refund(ctx, amount, opts)
	if err != nil {
		log.Printf("[payment][usecase] refund failed order_id=%s err=%v", opts.OrderID, err)
		return entities.PaymentResult{}, err
	}
	result.OrderID = opts.OrderID
	u.recordTranscript(ctx, "refund", opts.OrderID, result.Transcript)

	log.Printf("[payment][usecase] refund done order_id=%s success=%t code=%q", opts.OrderID, result.Success, result.Code)
	return result, nil
}

func (u *PaymentUseCase) Void(ctx context.Context, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	if err := u.checkGateway(); err != nil {
		return entities.PaymentResult{}, err
	}
	if strings.TrimSpace(opts.PaymentID) == "" {
		return entities.PaymentResult{}, ErrMissingPaymentID
	}
	opts = ensureOrderID(opts)

	log.Printf("[payment][usecase] void start order_id=%s payment_id=%s", opts.OrderID, opts.PaymentID)
	result, err := u.gateway.Void(ctx, opts)
	if err != nil {
		log.Printf("[payment][usecase] void failed order_id=%s err=%v", opts.OrderID, err)
		return entities.PaymentResult{}, err
	}
	result.OrderID = opts.OrderID
	u.recordTranscript(ctx, "void", opts.OrderID, result.Transcript)

	log.Printf("[payment][usecase] void done order_id=%s success=%t code=%q", opts.OrderID, result.Success, result.Code)
	return result, nil
}

func (u *PaymentUseCase) Verify(ctx context.Context, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	if err := u.checkGateway(); err != nil {
		return entities.PaymentResult{}, err
	}
	if err := validateCard(card); err != nil {
		return entities.PaymentResult{}, err
	}
	opts = ensureOrderID(opts)

	log.Printf("[payment][usecase] verify start order_id=%s", opts.OrderID)
	result, err := u.gateway.Verify(ctx, card, opts)
	if err != nil {
		log.Printf("[payment][usecase] verify failed order_id=%s err=%v", opts.OrderID, err)
		return entities.PaymentResult{}, err
	}
	result.OrderID = opts.OrderID
	u.recordTranscript(ctx, "verify", opts.OrderID, result.Transcript)

	log.Printf("[payment][usecase] verify done order_id=%s success=%t code=%q", opts.OrderID, result.Success, result.Code)
	return result, nil
}

func (u *PaymentUseCase) ListTranscriptsByOrderID(ctx context.Context, orderID string) ([]entities.Transcript, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if u.transcripts == nil {
		return nil, errors.New("transcript repository not configured")
	}
	return u.transcripts.ListByOrderID(ctx, orderID)
}

func (u *PaymentUseCase) checkGateway() error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return ErrGatewayNotConfigured
	}
	return nil
}

// recordTranscript stores the scrubbed exchange for audit. Storage problems
// are logged and never fail the payment call; without a scrubber nothing is
// stored, because raw transcripts must not reach the repository.
func (u *PaymentUseCase) recordTranscript(ctx context.Context, operation, orderID, transcript string) {
	if u.transcripts == nil || transcript == "" {
		return
	}
	if u.scrub == nil {
		log.Printf("[payment][usecase] transcript scrubber not configured; skipping capture operation=%s order_id=%s", operation, orderID)
		return
	}

	tr := entities.Transcript{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Operation: operation,
		Body:      u.scrub(transcript),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.transcripts.Create(ctx, tr); err != nil {
		log.Printf("[payment][usecase] transcript store failed operation=%s order_id=%s err=%v", operation, orderID, err)
	}
}

func validateCharge(amount int64, card entities.PaymentInstrument) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return validateCard(card)
}

func validateCard(card entities.PaymentInstrument) error {
	if strings.TrimSpace(card.Number) == "" {
		return ErrInvalidCard
	}
	return nil
}

// ensureOrderID mints an order id when the caller supplies none, so every
// exchange can be correlated with its stored transcript.
func ensureOrderID(opts entities.TransactionOptions) entities.TransactionOptions {
	if strings.TrimSpace(opts.OrderID) == "" {
		opts.OrderID = uuid.NewString()
	}
	return opts
}
