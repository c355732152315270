package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"vestapay/internal/domain/entities"
)

const (
	actionChargeSale      = "ChargeSale"
	actionChargeAuthorize = "ChargeAuthorize"
	actionChargeConfirm   = "ChargeConfirm"
	actionReversePayment  = "ReversePayment"

	// verifyProbeAmount is the small authorization Verify places to prove the
	// card is live without leaving a lasting charge.
	verifyProbeAmount int64 = 100
)

// VestaGateway translates the canonical payment operations into single
// request/response exchanges with the Vesta endpoint family.
//
// The gateway holds only immutable credentials and package-level read-only
// tables, so one instance is safe for concurrent callers as long as its
// Transport is.

type VestaGateway struct {
	creds     entities.Credentials
	transport Transport
	testMode  bool
}

func NewVestaGateway(creds entities.Credentials) (*VestaGateway, error) {
	return NewVestaGatewayWithTransport(creds, NewNetTransport())
}

// NewVestaGatewayWithTransport validates the credentials and wires a custom
// transport; a missing credential fails here, before any network call.
func NewVestaGatewayWithTransport(creds entities.Credentials, transport Transport) (*VestaGateway, error) {
	if err := creds.Validate(); err != nil {
		log.Printf("[vesta][gateway] invalid credentials err=%v", err)
		return nil, err
	}
	if creds.Version == "" {
		creds.Version = entities.DefaultProtocolVersion
	}
	if transport == nil {
		transport = NewNetTransport()
	}
	log.Printf("[vesta][gateway] initialized merchant_id=%s version=%s", creds.MerchantID, creds.Version)
	return &VestaGateway{creds: creds, transport: transport, testMode: isTestModeEnabled()}, nil
}

// Purchase charges the card in one step.
func (g *VestaGateway) Purchase(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	post := g.newPost()
	g.addOrder(post, amount, opts)
	addPaymentSource(post, card)
	addAddress(post, opts)
	return g.commit(ctx, actionChargeSale, post)
}

// Authorize places a hold on the card without capturing funds.
func (g *VestaGateway) Authorize(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	post := g.newPost()
	g.addOrder(post, amount, opts)
	addPaymentSource(post, card)
	addAddress(post, opts)
	return g.commit(ctx, actionChargeAuthorize, post)
}

// Capture confirms a prior authorization identified by opts.PaymentID.
func (g *VestaGateway) Capture(ctx context.Context, amount int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	post := g.newPost()
	g.addOrder(post, amount, opts)
	addPaymentSource(post, card)
	addPreviousPaymentSource(post, amount, opts)
	return g.commit(ctx, actionChargeConfirm, post)
}

// Refund returns funds against a prior payment identified by opts.PaymentID.
func (g *VestaGateway) Refund(ctx context.Context, amount int64, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	post := g.newPost()
	addPreviousPaymentSource(post, amount, opts)
	return g.commit(ctx, actionReversePayment, post)
}

// Void reverses a prior authorization. The provider reuses the
// ReversePayment action for this; the payload carries the prior payment
// reference and the order id, and no amount.
func (g *VestaGateway) Void(ctx context.Context, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	post := g.newPost()
	if opts.PaymentID != "" {
		post["PaymentID"] = opts.PaymentID
	}
	if opts.OrderID != "" {
		post["TransactionID"] = opts.OrderID
	}
	return g.commit(ctx, actionReversePayment, post)
}

// Verify checks the card without leaving a lasting charge: it authorizes a
// probe amount, then unconditionally reverses that authorization. The result
// reported to the caller is exactly the authorize result; the reversal's own
// outcome is observed and discarded.
func (g *VestaGateway) Verify(ctx context.Context, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
	auth, err := g.Authorize(ctx, verifyProbeAmount, card, opts)
	if err != nil {
		return auth, err
	}

	voidOpts := opts
	if pid := auth.PaymentID(); pid != "" {
		voidOpts.PaymentID = pid
	}
	if _, err := g.Void(ctx, voidOpts); err != nil {
		log.Printf("[vesta][gateway] verify reversal failed err=%v", err)
	}
	return auth, nil
}

// commit performs the single network round trip of an operation and shapes
// every failure mode into a PaymentResult with success=false: a transport
// failure carries the error body as the message, a malformed JSON body
// carries the raw body, and any other condition carries its description. The
// only propagated error is a done context.
func (g *VestaGateway) commit(ctx context.Context, action string, post map[string]any) (entities.PaymentResult, error) {
	body, err := json.Marshal(post)
	if err != nil {
		return entities.PaymentResult{}, err
	}

	url := g.creds.LiveURL + action
	log.Printf("[vesta][gateway] %s start payload_len=%d", action, len(body))

	status, respBody, terr := g.transport.Do(ctx, http.MethodPost, url, body, map[string]string{"Content-Type": "application/json"})
	transcript := buildTranscript(action, body, status, respBody)

	if terr != nil {
		if ctx.Err() != nil {
			return entities.PaymentResult{}, ctx.Err()
		}
		log.Printf("[vesta][gateway] %s transport failed err=%v", action, terr)
		return g.failureResult(terr.Error(), transcript), nil
	}
	if status < 200 || status > 299 {
		log.Printf("[vesta][gateway] %s provider error status=%d", action, status)
		message := strings.TrimSpace(string(respBody))
		if message == "" {
			message = fmt.Sprintf("provider returned status %d", status)
		}
		return g.failureResult(message, transcript), nil
	}

	params, perr := normalizeResponse(respBody)
	if perr != nil {
		log.Printf("[vesta][gateway] %s malformed response err=%v", action, perr)
		return g.failureResult(string(respBody), transcript), nil
	}

	result := classify(params, g.testMode)
	result.Transcript = transcript
	log.Printf("[vesta][gateway] %s done success=%t code=%q payment_id=%s", action, result.Success, result.Code, result.PaymentID())
	return result, nil
}

func (g *VestaGateway) failureResult(message, transcript string) entities.PaymentResult {
	return entities.PaymentResult{
		Message:    message,
		Params:     map[string]any{},
		Test:       g.testMode,
		Transcript: transcript,
	}
}

// buildTranscript serializes the exchange as one JSON envelope so scrubbing
// and storage deal with a single flat string.
func buildTranscript(action string, reqBody []byte, status int, respBody []byte) string {
	envelope := map[string]any{
		"action":   action,
		"request":  string(reqBody),
		"status":   status,
		"response": string(respBody),
	}
	b, err := json.Marshal(envelope)
	if err != nil {
		return ""
	}
	return string(b)
}

func isTestModeEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("VESTA_TEST_MODE")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
