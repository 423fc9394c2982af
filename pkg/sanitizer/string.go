package sanitizer

import (
	"strings"
)

// TrimAndNormalize trims s and collapses every run of whitespace to a single space.
func TrimAndNormalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeEmail lowercases the whole address. Logins compare emails with
// the stored value, so both sides must go through here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
