package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a provider body that is present but not valid
// JSON. An absent/empty body is not an error.
var ErrMalformedResponse = errors.New("provider response is not valid json")

// responseKeyMap rewrites provider wire fields into the canonical vocabulary
// the classifier works with. Wire keys missing from this table are dropped:
// only documented fields survive normalization.
var responseKeyMap = map[string]string{
	"ResponseCode":          "response_code",
	"ChargeAccountLast4":    "charge_account_last4",
	"PaymentID":             "payment_id",
	"PaymentAcquirerName":   "payment_acquirer_name",
	"PaymentDeviceTypeCD":   "payment_device_type_cd",
	"ChargeAccountFirst6":   "charge_account_first6",
	"PaymentStatus":         "payment_status",
	"ReversalAction":        "reversal_action",
	"ResponseText":          "response_text",
	"VestaDecisionCode":     "vesta_decision_code",
	"AuthorizedAmount":      "authorized_amount",
	"AvailableRefundAmount": "available_refund_amount",
}

func normalizeResponse(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	normalized := make(map[string]any, len(raw))
	for k, v := range raw {
		canonical, ok := responseKeyMap[k]
		if !ok {
			continue
		}
		normalized[canonical] = v
	}
	return normalized, nil
}
