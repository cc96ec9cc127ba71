package messaging

import "strings"

// NormalizePhone canonicalizes a Brazilian phone number for the gateway:
// strips every non-digit, inserts the mobile ninth digit after the
// two-digit area code when the subscriber part has only eight digits,
// and prefixes the country code when missing.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	// DDD + 8-digit subscriber: a mobile number missing its ninth digit.
	if len(digits) == 10 && !strings.HasPrefix(digits, countryCode) {
		digits = digits[:2] + "9" + digits[2:]
	}

	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return digits
}

// BarePhone strips the country code prefix, for allowlist comparison
// against locally written numbers.
func BarePhone(normalized, countryCode string) string {
	return strings.TrimPrefix(normalized, countryCode)
}
