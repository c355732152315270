package request

import (
	"errors"
	"testing"
)

func TestChargeRequest_ResolveCard(t *testing.T) {
	t.Run("nil card", func(t *testing.T) {
		r := ChargeRequest{Amount: 100}
		if _, err := r.ResolveCard(); !errors.Is(err, ErrMissingCard) {
			t.Fatalf("expected ErrMissingCard, got %v", err)
		}
	})

	t.Run("blank number", func(t *testing.T) {
		r := ChargeRequest{Card: &CardRequest{Name: "John Doe", Number: "   "}}
		if _, err := r.ResolveCard(); !errors.Is(err, ErrMissingCard) {
			t.Fatalf("expected ErrMissingCard, got %v", err)
		}
	})

	t.Run("maps all fields", func(t *testing.T) {
		r := ChargeRequest{Card: &CardRequest{
			Name:              "John Doe",
			Number:            " 340001234527890 ",
			VerificationValue: "183",
			Month:             1,
			Year:              2019,
		}}
		card, err := r.ResolveCard()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.Number != "340001234527890" {
			t.Fatalf("number not trimmed: %q", card.Number)
		}
		if card.Name != "John Doe" || card.VerificationValue != "183" || card.Month != 1 || card.Year != 2019 {
			t.Fatalf("card fields lost: %+v", card)
		}
	})
}

func TestChargeRequest_ResolveOptions(t *testing.T) {
	t.Run("trims identifiers", func(t *testing.T) {
		r := ChargeRequest{OrderID: " ord-1 ", PaymentID: " pay-7 "}
		opts := r.ResolveOptions()
		if opts.OrderID != "ord-1" || opts.PaymentID != "pay-7" {
			t.Fatalf("identifiers not trimmed: %+v", opts)
		}
	})

	t.Run("addresses stay nil when absent", func(t *testing.T) {
		opts := ChargeRequest{}.ResolveOptions()
		if opts.BillingAddress != nil || opts.Address != nil {
			t.Fatalf("expected nil addresses: %+v", opts)
		}
	})

	t.Run("addresses map through", func(t *testing.T) {
		r := ChargeRequest{
			BillingAddress: &AddressRequest{Line1: "456 My Street", City: "Ottawa", Region: "ON", PostalCode: "K1C2N6", CountryCode: "CA"},
			Address:        &AddressRequest{Line1: "111 Other St"},
		}
		opts := r.ResolveOptions()
		if opts.BillingAddress == nil || opts.BillingAddress.City != "Ottawa" {
			t.Fatalf("billing address lost: %+v", opts.BillingAddress)
		}
		if opts.Address == nil || opts.Address.Line1 != "111 Other St" {
			t.Fatalf("address lost: %+v", opts.Address)
		}
	})
}
