package payments

import "testing"

func TestClassifySuccessMatrix(t *testing.T) {
	cases := []struct {
		name         string
		responseCode string
		status       string
		success      bool
	}{
		{"code 0 status 10", "0", "10", true},
		{"code 0 status 5", "0", "5", true},
		{"code 0 unknown status", "0", "7", false},
		{"non-zero code good status", "99", "10", false},
		{"non-zero code bad status", "1", "1", false},
		{"missing fields", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := map[string]any{}
			if tc.responseCode != "" {
				params["response_code"] = tc.responseCode
			}
			if tc.status != "" {
				params["payment_status"] = tc.status
			}

			result := classify(params, false)
			if result.Success != tc.success {
				t.Fatalf("expected success=%t, got %+v", tc.success, result)
			}
		})
	}
}

func TestClassifyMessage(t *testing.T) {
	t.Run("no message when response_code is 0", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":  "0",
			"payment_status": "10",
			"response_text":  "Approved",
		}, false)
		if result.Message != "" {
			t.Fatalf("expected empty message on code 0, got %q", result.Message)
		}
		if result.Params["response_text"] != "Approved" {
			t.Fatalf("diagnostic params should keep the record: %+v", result.Params)
		}
	})

	t.Run("response_text verbatim otherwise", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":  "99",
			"payment_status": "1",
			"response_text":  "Login failed",
		}, false)
		if result.Message != "Login failed" {
			t.Fatalf("expected verbatim response_text, got %q", result.Message)
		}
	})
}

func TestClassifyAuthorization(t *testing.T) {
	t.Run("true for completed payments", func(t *testing.T) {
		result := classify(map[string]any{"response_code": "0", "payment_status": "10"}, false)
		if !result.Authorization {
			t.Fatalf("expected authorization=true: %+v", result)
		}
	})

	t.Run("false for authorized-only payments", func(t *testing.T) {
		result := classify(map[string]any{"response_code": "0", "payment_status": "5"}, false)
		if result.Authorization {
			t.Fatalf("expected authorization=false: %+v", result)
		}
	})

	t.Run("false for non-zero response codes", func(t *testing.T) {
		result := classify(map[string]any{"response_code": "1", "payment_status": "10"}, false)
		if result.Authorization {
			t.Fatalf("expected authorization=false: %+v", result)
		}
	})
}

func TestClassifyDeclineCodes(t *testing.T) {
	cases := []struct {
		status string
		code   string
	}{
		{"1", "bank_declined"},
		{"3", "merchant_declined"},
		{"6", "communication_error"},
	}
	for _, tc := range cases {
		t.Run("status "+tc.status, func(t *testing.T) {
			result := classify(map[string]any{
				"response_code":  "0",
				"payment_status": tc.status,
				"response_text":  "declined",
			}, false)
			if result.Success {
				t.Fatalf("expected failure: %+v", result)
			}
			if result.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, result.Code)
			}
		})
	}

	t.Run("unknown failing status falls back to response_text", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":  "0",
			"payment_status": "42",
			"response_text":  "Contact the issuer",
		}, false)
		if result.Code != "Contact the issuer" {
			t.Fatalf("expected fallback to response_text, got %q", result.Code)
		}
	})

	t.Run("success leaves code empty", func(t *testing.T) {
		result := classify(map[string]any{"response_code": "0", "payment_status": "10"}, false)
		if result.Code != "" {
			t.Fatalf("expected empty code on success, got %q", result.Code)
		}
	})
}

func TestClassifyFraudCodes(t *testing.T) {
	t.Run("fraud explanation overrides the decline code", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":       "99",
			"payment_status":      "1",
			"vesta_decision_code": "1706",
			"response_text":       "declined",
		}, false)
		if result.Code != "Duplicate transaction" {
			t.Fatalf("expected fraud explanation, got %q", result.Code)
		}
	})

	t.Run("numeric decision code is accepted", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":       "99",
			"payment_status":      "1",
			"vesta_decision_code": float64(1701),
		}, false)
		if result.Code != "Score exceeds risk system thresholds" {
			t.Fatalf("expected fraud explanation, got %q", result.Code)
		}
	})

	t.Run("blank decision code falls through to decline mapping", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":       "99",
			"payment_status":      "3",
			"vesta_decision_code": " ",
		}, false)
		if result.Code != "merchant_declined" {
			t.Fatalf("expected merchant_declined, got %q", result.Code)
		}
	})

	t.Run("unknown decision code falls through to decline mapping", func(t *testing.T) {
		result := classify(map[string]any{
			"response_code":       "99",
			"payment_status":      "6",
			"vesta_decision_code": "9999",
		}, false)
		if result.Code != "communication_error" {
			t.Fatalf("expected communication_error, got %q", result.Code)
		}
	})
}

func TestStringParam(t *testing.T) {
	params := map[string]any{
		"payment_status": float64(10),
		"response_code":  "0",
	}
	if got := stringParam(params, "payment_status"); got != "10" {
		t.Fatalf("expected numeric status to render as 10, got %q", got)
	}
	if got := stringParam(params, "response_code"); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
	if got := stringParam(params, "missing"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}
