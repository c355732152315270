package entities

import "errors"

var (
	ErrMissingAccountName = errors.New("missing account_name credential")
	ErrMissingPassword    = errors.New("missing password credential")
	ErrMissingMerchantID  = errors.New("missing merchant_id credential")
	ErrMissingLiveURL     = errors.New("missing live_url credential")
)

// DefaultProtocolVersion is sent when the caller does not pin a version.
const DefaultProtocolVersion = "3.3.1"

// Credentials identify the merchant against the Vesta endpoint family.
//
// They are fixed at gateway construction time and never change afterwards,
// which is what makes the gateway safe for concurrent callers.

type Credentials struct {
	AccountName string
	Password    string
	MerchantID  string
	LiveURL     string
	Version     string
}

// Validate reports the first missing mandatory field. Version is optional and
// defaulted by the gateway.
func (c Credentials) Validate() error {
	if c.AccountName == "" {
		return ErrMissingAccountName
	}
	if c.Password == "" {
		return ErrMissingPassword
	}
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	if c.LiveURL == "" {
		return ErrMissingLiveURL
	}
	return nil
}
