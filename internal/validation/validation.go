// Package validation holds the pure format validators used on the payment
// creation path. They are stateless so the same rules can be enforced
// server-side and mirrored by any client without diverging.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxAmount is the configured ceiling for a single payment
const MaxAmount = 1_000_000

var (
	ibanPattern  = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)
	swiftPattern = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+[0-9]{7,15}$`)

	// Plain decimal notation only. Exponent forms, NaN, Inf and signs are
	// rejected before parsing.
	amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// SupportedCurrencies is the fixed set of ISO 4217 codes the portal accepts
var SupportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "CHF": true,
	"CAD": true, "AUD": true, "NZD": true, "SEK": true, "NOK": true,
	"DKK": true, "SGD": true, "HKD": true, "PLN": true, "AED": true,
}

// Normalize strips whitespace and uppercases bank identifiers
func Normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// IBAN validates an IBAN using the ISO 7064 MOD 97-10 checksum
func IBAN(s string) bool {
	s = Normalize(s)
	if len(s) < 15 || len(s) > 34 {
		return false
	}
	if !ibanPattern.MatchString(s) {
		return false
	}

	// Move the country code and check digits to the end
	rearranged := s[4:] + s[:4]

	// Letters map to 10..35; compute the numeric string mod 97 incrementally
	rem := 0
	for _, r := range rearranged {
		var digits string
		switch {
		case r >= '0' && r <= '9':
			digits = string(r)
		case r >= 'A' && r <= 'Z':
			digits = strconv.Itoa(int(r-'A') + 10)
		default:
			return false
		}
		for _, d := range digits {
			rem = (rem*10 + int(d-'0')) % 97
		}
	}

	return rem == 1
}

// SWIFT validates a SWIFT/BIC code (8 or 11 characters)
func SWIFT(s string) bool {
	s = Normalize(s)
	if len(s) != 8 && len(s) != 11 {
		return false
	}
	return swiftPattern.MatchString(s)
}

// Currency validates membership in the supported currency set
func Currency(code string) bool {
	return SupportedCurrencies[Normalize(code)]
}

// Amount parses and validates a monetary amount: plain decimal notation,
// positive, at most the configured ceiling, and no more than 2 decimal places
func Amount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value <= 0 || value > MaxAmount {
		return 0, false
	}

	return value, true
}

// Email validates an email address with a bounded-length pattern check
func Email(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return false
	}
	return emailPattern.MatchString(s)
}

// Phone validates an international phone number: a leading + followed by
// 7 to 15 digits after separators are stripped
func Phone(s string) bool {
	s = phoneSeparators.Replace(strings.TrimSpace(s))
	return phonePattern.MatchString(s)
}

// MaskIBAN masks an IBAN for log output, keeping the country prefix and the
// last four characters
func MaskIBAN(s string) string {
	s = Normalize(s)
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
