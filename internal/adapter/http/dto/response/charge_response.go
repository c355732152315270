package response

import (
	"vestapay/internal/domain/entities"
)

type ChargeResponse struct {
	Success       bool           `json:"success"`
	OrderID       string         `json:"order_id,omitempty"`
	PaymentID     string         `json:"payment_id,omitempty"`
	Message       string         `json:"message,omitempty"`
	Code          string         `json:"code,omitempty"`
	Authorization bool           `json:"authorization"`
	Test          bool           `json:"test"`
	Params        map[string]any `json:"params,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) ChargeResponse {
	return ChargeResponse{
		Success:       r.Success,
		OrderID:       r.OrderID,
		PaymentID:     r.PaymentID(),
		Message:       r.Message,
		Code:          r.Code,
		Authorization: r.Authorization,
		Test:          r.Test,
		Params:        r.Params,
	}
}
