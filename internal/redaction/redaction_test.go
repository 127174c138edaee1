package redaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact_IBAN(t *testing.T) {
	r := NewPatternRedactor()

	out := r.Redact("recipient account is GB29NWBK60161331926819, please verify")
	assert.Equal(t, "recipient account is [REDACTED-IBAN], please verify", out)
}

func TestRedact_SWIFT(t *testing.T) {
	r := NewPatternRedactor()

	assert.Equal(t, "wire via [REDACTED-BIC]", r.Redact("wire via DEUTDEFF500"))
	assert.Equal(t, "bic [REDACTED-BIC] confirmed", r.Redact("bic NWBKGB2L confirmed"))
}

func TestRedact_IBANBeforeSWIFT(t *testing.T) {
	// The IBAN rule must win over the shorter BIC pattern on the same token
	r := NewPatternRedactor()

	out := r.Redact("DE89370400440532013000")
	assert.Equal(t, "[REDACTED-IBAN]", out)
}

func TestRedact_Email(t *testing.T) {
	r := NewPatternRedactor()

	out := r.Redact("reached out to alice@example.com about the delay")
	assert.Equal(t, "reached out to [REDACTED-EMAIL] about the delay", out)
}

func TestRedact_Phone(t *testing.T) {
	r := NewPatternRedactor()

	assert.Equal(t, "call [REDACTED-PHONE]", r.Redact("call +49 151 1234-5678"))
	assert.Equal(t, "call [REDACTED-PHONE] today", r.Redact("call +1 (415) 555-0100 today"))
}

func TestRedact_MixedText(t *testing.T) {
	r := NewPatternRedactor()

	in := "customer alice@example.com sent funds to GB29NWBK60161331926819 (+4915112345678)"
	out := r.Redact(in)

	assert.NotContains(t, out, "alice@example.com")
	assert.NotContains(t, out, "GB29NWBK60161331926819")
	assert.NotContains(t, out, "4915112345678")
	assert.Contains(t, out, "[REDACTED-EMAIL]")
	assert.Contains(t, out, "[REDACTED-IBAN]")
	assert.Contains(t, out, "[REDACTED-PHONE]")
}

func TestRedact_PlainTextUntouched(t *testing.T) {
	r := NewPatternRedactor()

	in := "documents received, waiting on compliance sign-off"
	assert.Equal(t, in, r.Redact(in))
}
