// Package redaction scrubs sensitive recipient data from free-text fields
// before they are stored. Detection is best-effort pattern matching, not a
// formal PII detector; the Redactor interface exists so the heuristics can be
// tuned without touching the note-storage path.
package redaction

import "regexp"

// Redactor rewrites text before storage
type Redactor interface {
	Redact(text string) string
}

// Placeholders substituted for matched tokens
const (
	PlaceholderIBAN  = "[REDACTED-IBAN]"
	PlaceholderSWIFT = "[REDACTED-BIC]"
	PlaceholderEmail = "[REDACTED-EMAIL]"
	PlaceholderPhone = "[REDACTED-PHONE]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// PatternRedactor replaces IBAN-like, SWIFT-like, email, and phone tokens
// with fixed placeholders
type PatternRedactor struct {
	rules []rule
}

// NewPatternRedactor creates the default redactor
func NewPatternRedactor() *PatternRedactor {
	return &PatternRedactor{
		rules: []rule{
			// IBAN before SWIFT: an IBAN body would otherwise match the
			// shorter BIC pattern first
			{regexp.MustCompile(`\b[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}\b`), PlaceholderIBAN},
			{regexp.MustCompile(`\b[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}(?:[A-Z0-9]{3})?\b`), PlaceholderSWIFT},
			{regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`), PlaceholderEmail},
			{regexp.MustCompile(`\+[0-9][0-9 ().\-]{5,18}[0-9]`), PlaceholderPhone},
		},
	}
}

// Redact applies every rule in order
func (r *PatternRedactor) Redact(text string) string {
	for _, rule := range r.rules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
