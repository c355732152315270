package entities

// PaymentInstrument is the card presented for a charge. It lives only for the
// duration of a single request build and must never be persisted or logged in
// clear text (the transcript scrubber enforces the logging side).

type PaymentInstrument struct {
	Name              string
	Number            string
	VerificationValue string
	Month             int
	Year              int
}

// Address is the optional cardholder address. Individual fields are only
// forwarded to the provider when present.
type Address struct {
	Line1       string
	City        string
	Region      string
	PostalCode  string
	CountryCode string
}

// TransactionOptions is the per-call options bag accepted by every gateway
// operation. All fields are optional at this level; the use case decides which
// ones an operation actually requires (e.g. PaymentID for refund/void).
//
// BillingAddress wins over Address when both are supplied.

type TransactionOptions struct {
	OrderID         string
	WebSessionID    string
	Fingerprint     string
	RiskInformation string
	PaymentID       string
	BillingAddress  *Address
	Address         *Address
}

// PaymentResult is the canonical outcome of one gateway round trip.
//
//   - Params carries the full normalized provider record (canonical keys).
//   - Message is empty when the provider reported response_code "0"; on
//     failure it carries the provider's response_text or the error body.
//   - Code is the fraud explanation when one applies, otherwise the mapped
//     decline code, otherwise empty on success.
//   - Authorization mirrors the original gateway's boolean-shaped
//     authorization value (payment_status "10" under response_code "0").
//   - Transcript is the raw request/response exchange, unscrubbed; callers
//     must scrub it before storing or logging.

type PaymentResult struct {
	Success       bool           `json:"success"`
	OrderID       string         `json:"order_id,omitempty"`
	Message       string         `json:"message,omitempty"`
	Code          string         `json:"code,omitempty"`
	Authorization bool           `json:"authorization"`
	Params        map[string]any `json:"params,omitempty"`
	Test          bool           `json:"test"`
	Transcript    string         `json:"-"`
}

// PaymentID returns the provider payment reference from the normalized
// record, or "" when the provider did not send one.
func (r PaymentResult) PaymentID() string {
	v, ok := r.Params["payment_id"]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
