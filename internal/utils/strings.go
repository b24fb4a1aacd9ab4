package utils

import "strings"

// NormalizeEmail normalizes an email-shaped identifier: trimmed and
// lower-cased. The result is the canonical key for order lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MaskEmail masks the local part of an email address for logging (PII)
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	domain := parts[1]

	var maskedLocal string
	if len(localPart) <= 2 {
		maskedLocal = localPart
	} else {
		maskedLocal = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return maskedLocal + "@" + domain
}
