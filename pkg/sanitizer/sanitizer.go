package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Apply runs value through the transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable transformation pipeline. Preferred over
// repeated Apply calls when the same chain is used in several places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeNFC applies Unicode NFC normalization so that visually identical
// free-text input compares equal regardless of how the client composed it.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// NormalizeEmail prepares an email address for validation and lookup:
// trimmed and lowercased. It performs no syntax checking.
func NormalizeEmail(s string) string {
	return Apply(s, Trim, ToLower)
}

// NormalizeName prepares a display-name or bio field: NFC-normalized with
// inner whitespace collapsed.
func NormalizeName(s string) string {
	return Apply(s, NormalizeNFC, CollapseWhitespace)
}

// NormalizeURL trims a profile link. URLs are case-sensitive past the host,
// so nothing is lowercased here.
func NormalizeURL(s string) string {
	return Trim(s)
}
