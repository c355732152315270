package payments

import "regexp"

const filteredMarker = "[FILTERED]"

// scrubbedFields are the payload fields whose values must never reach a log
// or a stored transcript.
var scrubbedFields = []string{
	"AccountName",
	"Password",
	"ChargeAccountNumber",
	"ChargeCVN",
}

// Each pattern matches `"Field":"value"` whether the quotes appear bare or
// JSON-escaped (`\"Field\":\"value\"`), case-insensitively. Group 1 keeps the
// key and opening quote; the value run stops at the closing quote in either
// form.
var scrubPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(scrubbedFields))
	for _, field := range scrubbedFields {
		patterns = append(patterns, regexp.MustCompile(`(?i)(\\?"`+field+`\\?"\s*:\s*\\?")([^"\\]*)`))
	}
	return patterns
}()

// ScrubTranscript replaces sensitive field values in a raw transcript with
// [FILTERED]. Everything else is left untouched, and scrubbing an already
// scrubbed transcript changes nothing.
func ScrubTranscript(transcript string) string {
	for _, pattern := range scrubPatterns {
		transcript = pattern.ReplaceAllString(transcript, "${1}"+filteredMarker)
	}
	return transcript
}
