package payments

import (
	"fmt"
	"strings"

	"vestapay/internal/domain/entities"
)

const (
	chargeSource           = "WEB"
	accountNumberIndicator = "1"

	// maxNameLen is the provider's limit per cardholder name part.
	maxNameLen = 19
)

// newPost starts an outbound payload with the fields every operation carries:
// the merchant credentials and the routing id.
func (g *VestaGateway) newPost() map[string]any {
	return map[string]any{
		"AccountName":       g.creds.AccountName,
		"Password":          g.creds.Password,
		"MerchantRoutingID": g.creds.MerchantID,
	}
}

func (g *VestaGateway) addOrder(post map[string]any, amount int64, opts entities.TransactionOptions) {
	if opts.OrderID != "" {
		post["TransactionID"] = opts.OrderID
	}
	post["ChargeAmount"] = formatAmount(amount)
	post["ChargeSource"] = chargeSource
	post["StoreCard"] = "false"
	if opts.WebSessionID != "" {
		post["WebSessionID"] = opts.WebSessionID
	}
	if opts.Fingerprint != "" {
		post["Fingerprint"] = opts.Fingerprint
	}
	// Risk information goes out verbatim, empty included.
	post["RiskInformation"] = opts.RiskInformation
}

func addPaymentSource(post map[string]any, card entities.PaymentInstrument) {
	first, last := splitCardholderName(card.Name)
	post["CardHolderFirstName"] = first
	post["CardHolderLastName"] = last
	post["ChargeAccountNumber"] = card.Number
	post["ChargeAccountNumberIndicator"] = accountNumberIndicator
	post["ChargeCVN"] = card.VerificationValue
	post["ChargeExpirationMMYY"] = formatExpiration(card.Month, card.Year)
}

// addPreviousPaymentSource references an earlier payment for confirm/reverse
// payloads. It removes any fresh account number so a card presented on the
// same call never leaks into a reversal.
func addPreviousPaymentSource(post map[string]any, amount int64, opts entities.TransactionOptions) {
	post["RefundAmount"] = formatAmount(amount)
	if opts.PaymentID != "" {
		post["PaymentID"] = opts.PaymentID
	}
	if opts.OrderID != "" {
		post["TransactionID"] = opts.OrderID
	}
	delete(post, "ChargeAccountNumber")
}

func addAddress(post map[string]any, opts entities.TransactionOptions) {
	address := opts.BillingAddress
	if address == nil {
		address = opts.Address
	}
	if address == nil {
		return
	}
	if address.Line1 != "" {
		post["CardHolderAddressLine1"] = address.Line1
	}
	if address.City != "" {
		post["CardHolderCity"] = address.City
	}
	if address.Region != "" {
		post["CardHolderRegion"] = address.Region
	}
	if address.PostalCode != "" {
		post["CardHolderPostalCode"] = address.PostalCode
	}
	if address.CountryCode != "" {
		post["CardHolderCountryCode"] = address.CountryCode
	}
}

// splitCardholderName breaks a full name at its last space. A single-token
// name fills both parts. Each part is capped at the provider's limit.
func splitCardholderName(name string) (string, string) {
	name = strings.TrimSpace(name)
	first, last := name, name
	if i := strings.LastIndex(name, " "); i >= 0 {
		first, last = name[:i], name[i+1:]
	}
	return truncateName(first), truncateName(last)
}

func truncateName(s string) string {
	r := []rune(s)
	if len(r) > maxNameLen {
		return string(r[:maxNameLen])
	}
	return s
}

func formatExpiration(month, year int) string {
	return fmt.Sprintf("%02d%02d", month, year%100)
}
