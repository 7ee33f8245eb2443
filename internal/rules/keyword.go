package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// keyword is a single compiled term of a name rule
type keyword struct {
	text   string
	phrase bool // multi-word terms match as plain substrings
}

func newKeyword(s string) keyword {
	s = norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
	return keyword{
		text:   s,
		phrase: strings.ContainsAny(s, " -"),
	}
}

func (k keyword) matches(text string) bool {
	if k.text == "" {
		return false
	}
	if k.phrase {
		return strings.Contains(text, k.text)
	}
	return ContainsWord(text, k.text)
}

// ContainsWord reports whether word occurs in text as a whole word.
// A trailing plural "s" or "es" is tolerated, so "egg" matches "eggs"
// but "rum" does not match "serum" or "drum".
func ContainsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for off := 0; off < len(text); {
		i := strings.Index(text[off:], word)
		if i < 0 {
			return false
		}
		start := off + i
		end := start + len(word)
		if boundaryBefore(text, start) && endsWord(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		off = start + size
	}
	return false
}

func endsWord(text string, end int) bool {
	if boundaryAt(text, end) {
		return true
	}
	rest := text[end:]
	if strings.HasPrefix(rest, "s") && boundaryAt(text, end+1) {
		return true
	}
	return strings.HasPrefix(rest, "es") && boundaryAt(text, end+2)
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

func boundaryAt(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
