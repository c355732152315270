package request

import (
	"errors"
	"strings"

	"vestapay/internal/domain/entities"
)

var (
	ErrMissingCard = errors.New("missing card")
)

type CardRequest struct {
	Name              string `json:"name" binding:"required"`
	Number            string `json:"number" binding:"required"`
	VerificationValue string `json:"verification_value"`
	Month             int    `json:"month" binding:"required"`
	Year              int    `json:"year" binding:"required"`
}

type AddressRequest struct {
	Line1       string `json:"line1"`
	City        string `json:"city"`
	Region      string `json:"region"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
}

// ChargeRequest is the payload shared by all charge endpoints. Amount is in
// minor units (cents). Which fields are mandatory depends on the operation
// and is enforced by the use case, not here.
type ChargeRequest struct {
	Amount          int64           `json:"amount"`
	Card            *CardRequest    `json:"card"`
	OrderID         string          `json:"order_id"`
	PaymentID       string          `json:"payment_id"`
	WebSessionID    string          `json:"web_session_id"`
	Fingerprint     string          `json:"fingerprint"`
	RiskInformation string          `json:"risk_information"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	Address         *AddressRequest `json:"address"`
}

func (r ChargeRequest) ResolveCard() (entities.PaymentInstrument, error) {
	if r.Card == nil || strings.TrimSpace(r.Card.Number) == "" {
		return entities.PaymentInstrument{}, ErrMissingCard
	}
	return entities.PaymentInstrument{
		Name:              r.Card.Name,
		Number:            strings.TrimSpace(r.Card.Number),
		VerificationValue: r.Card.VerificationValue,
		Month:             r.Card.Month,
		Year:              r.Card.Year,
	}, nil
}

func (r ChargeRequest) ResolveOptions() entities.TransactionOptions {
	opts := entities.TransactionOptions{
		OrderID:         strings.TrimSpace(r.OrderID),
		PaymentID:       strings.TrimSpace(r.PaymentID),
		WebSessionID:    r.WebSessionID,
		Fingerprint:     r.Fingerprint,
		RiskInformation: r.RiskInformation,
	}
	if r.BillingAddress != nil {
		opts.BillingAddress = r.BillingAddress.toEntity()
	}
	if r.Address != nil {
		opts.Address = r.Address.toEntity()
	}
	return opts
}

func (a AddressRequest) toEntity() *entities.Address {
	return &entities.Address{
		Line1:       a.Line1,
		City:        a.City,
		Region:      a.Region,
		PostalCode:  a.PostalCode,
		CountryCode: a.CountryCode,
	}
}
