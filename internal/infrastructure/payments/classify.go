package payments

import (
	"strconv"
	"strings"

	"vestapay/internal/domain/entities"
)

// goodStatuses are the payment_status values accepted as success when the
// provider reports response_code "0". Comparisons are against the wire string
// form; the provider keys its tables on strings, not numbers.
var goodStatuses = map[string]string{
	"10": "complete",
	"5":  "authorized",
}

// declineCodes maps a failing payment_status to a stable decline code. A
// failing status outside this table falls back to the provider's verbatim
// response_text.
var declineCodes = map[string]string{
	"1": "bank_declined",
	"3": "merchant_declined",
	"6": "communication_error",
}

// fraudCodes explains the provider's risk-system decision codes. The
// explanation, when one applies, wins over the status-derived decline code.
var fraudCodes = map[int]string{
	1701: "Score exceeds risk system thresholds",
	1702: "Insufficient information for risk system to approve",
	1703: "Insufficient checking account history",
	1704: "Suspended account",
	1705: "Payment method type is not accepted",
	1706: "Duplicate transaction",
	1707: "Other payment(s) still in process",
	1708: "SSN and/or address did not pass bureau validation",
	1709: "Exceeds check amount limit",
	1710: "High risk based upon checking account history (EWS)",
	1711: "Declined due to ACH regulations",
	1712: "Information provided does not match what is on file at bank",
}

// classify turns a normalized provider record into a PaymentResult.
//
// Message stays empty when the provider reported response_code "0"; the
// normalized record in Params is the diagnostic payload for that case. The
// boolean-shaped Authorization mirrors payment_status "10" under
// response_code "0".
func classify(params map[string]any, test bool) entities.PaymentResult {
	code := stringParam(params, "response_code")
	status := stringParam(params, "payment_status")
	_, statusOK := goodStatuses[status]

	result := entities.PaymentResult{
		Success: code == "0" && statusOK,
		Params:  params,
		Test:    test,
	}

	if code == "0" {
		result.Authorization = status == "10"
	} else {
		result.Message = stringParam(params, "response_text")
	}

	if explanation, ok := fraudExplanation(params); ok {
		result.Code = explanation
	} else if !result.Success {
		result.Code = declineCodeFrom(params, status)
	}
	return result
}

func declineCodeFrom(params map[string]any, status string) string {
	if mapped, ok := declineCodes[status]; ok {
		return mapped
	}
	return stringParam(params, "response_text")
}

func fraudExplanation(params map[string]any) (string, bool) {
	v, ok := params["vesta_decision_code"]
	if !ok {
		return "", false
	}
	n, ok := decisionCode(v)
	if !ok {
		return "", false
	}
	explanation, ok := fraudCodes[n]
	return explanation, ok
}

func decisionCode(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0, false
		}
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int(t), true
	}
	return 0, false
}

// stringParam returns the wire string form of a normalized field. Numeric
// values are rendered without a fraction so "10" and 10 classify alike.
func stringParam(params map[string]any, key string) string {
	switch t := params[key].(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
