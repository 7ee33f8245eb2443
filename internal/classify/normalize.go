package classify

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName lower-cases name, composes it to NFC, trims it and collapses
// internal whitespace runs to single spaces. The result is the mapping key.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	return strings.Join(strings.Fields(NormalizeText(name)), " ")
}

// NormalizeText lower-cases upstream category or tag text and composes it to
// NFC. Each run of invalid UTF-8 bytes becomes a single U+FFFD, so the result
// survives a JSON round trip unchanged.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "\uFFFD")
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}
