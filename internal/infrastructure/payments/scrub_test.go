package payments

import (
	"strings"
	"testing"
)

func TestScrubTranscript(t *testing.T) {
	t.Run("redacts sensitive values in plain json", func(t *testing.T) {
		in := `{"AccountName":"acct","Password":"secret","ChargeAccountNumber":"340001234527890","ChargeCVN":"183","ChargeAmount":"2.00"}`
		out := ScrubTranscript(in)

		for _, leaked := range []string{"acct", "secret", "340001234527890", "183"} {
			if strings.Contains(out, leaked) {
				t.Fatalf("value %q survived scrubbing: %s", leaked, out)
			}
		}
		if !strings.Contains(out, `"AccountName":"[FILTERED]"`) {
			t.Fatalf("expected filtered marker: %s", out)
		}
		if !strings.Contains(out, `"ChargeAmount":"2.00"`) {
			t.Fatalf("non-sensitive fields must stay intact: %s", out)
		}
	})

	t.Run("redacts escaped json embedded in a transcript", func(t *testing.T) {
		in := `{"request":"{\"AccountName\":\"acct\",\"Password\":\"secret\",\"ChargeCVN\":\"183\"}"}`
		out := ScrubTranscript(in)

		for _, leaked := range []string{"acct", "secret", "183"} {
			if strings.Contains(out, leaked) {
				t.Fatalf("value %q survived scrubbing: %s", leaked, out)
			}
		}
		if !strings.Contains(out, `\"Password\":\"[FILTERED]`) {
			t.Fatalf("expected filtered marker in escaped form: %s", out)
		}
	})

	t.Run("matches field names case-insensitively", func(t *testing.T) {
		out := ScrubTranscript(`{"accountname":"acct","PASSWORD":"secret"}`)
		if strings.Contains(out, "acct") || strings.Contains(out, "secret") {
			t.Fatalf("case variants survived scrubbing: %s", out)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := `{"AccountName":"acct","Password":"secret","ChargeAccountNumber":"4111","ChargeCVN":"999"}`
		once := ScrubTranscript(in)
		twice := ScrubTranscript(once)
		if once != twice {
			t.Fatalf("scrubbing is not idempotent:\nonce:  %s\ntwice: %s", once, twice)
		}
	})

	t.Run("leaves structure untouched", func(t *testing.T) {
		in := `{"ChargeSource":"WEB","StoreCard":"false"}`
		if out := ScrubTranscript(in); out != in {
			t.Fatalf("transcript without sensitive fields changed: %s", out)
		}
	})
}
