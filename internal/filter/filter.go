// Package filter decides whether a product name plausibly names a single
// culinary ingredient rather than a branded or prepared product.
package filter

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest name, in characters, still treated as an ingredient
const MaxNameLength = 60

// minDigitRun is the length of a digit run that marks a product code
const minDigitRun = 5

// Rejection reasons returned by Reason
const (
	ReasonTooLong  = "too_long"
	ReasonDigitRun = "digit_run"
	reasonDenyPfx  = "denylist:"
)

// denylist holds prepared-food and snack terms, matched as substrings
var denylist = []string{
	"pizza", "sandwich", "burger", "wrap", "meal kit", "ready to eat",
	"frozen dinner", "tv dinner", "microwave", "instant", "protein bar",
	"energy bar", "snack bar", "chips", "crisps", "cookie", "biscuit",
	"crouton", "popcorn", "pretzel",
}

// IsCulinaryIngredient reports whether name passes the ingredient heuristics.
// The upstream category and tag text are accepted for future heuristics and
// currently do not influence the decision.
func IsCulinaryIngredient(name, primary, tags string) bool {
	return Reason(name) == ""
}

// Reason returns the heuristic that rejects name, or "" when it is accepted
func Reason(name string) string {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ReasonTooLong
	}
	if hasDigitRun(name, minDigitRun) {
		return ReasonDigitRun
	}
	for _, term := range denylist {
		if strings.Contains(name, term) {
			return reasonDenyPfx + term
		}
	}
	return ""
}

// Denylist returns the prepared-food terms in check order
func Denylist() []string {
	return append([]string(nil), denylist...)
}

func hasDigitRun(s string, n int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
