package rules

import (
	"strings"

	"github.com/ppiankov/pantrymap/internal/category"
)

// NameRule is an authored name rule: every keyword must be present in the
// product name for the rule to fire.
type NameRule struct {
	Keywords []string `yaml:"keywords" json:"keywords"`
	Category string   `yaml:"category" json:"category"`
}

// FieldRule is an authored category-field rule. A Category of NoOpinion
// halts the scan without asserting anything.
type FieldRule struct {
	Keyword  string `yaml:"keyword" json:"keyword"`
	Category string `yaml:"category" json:"category"`
}

// NoOpinion marks a field rule that matches but declines to classify
const NoOpinion = ""

// Match is the outcome of a successful name rule scan
type Match struct {
	Category category.ID
	Rule     int // position of the winning rule in its table
}

// NameTable is an immutable, ordered decision list over product names
type NameTable struct {
	rules    []compiledNameRule
	authored []NameRule
}

type compiledNameRule struct {
	keywords []keyword
	target   category.ID
}

// CompileNameTable compiles authored rules, preserving their order.
// Category names are resolved through the registry; unknown names resolve
// to category.Unknown.
func CompileNameTable(rules []NameRule) *NameTable {
	t := &NameTable{
		rules:    make([]compiledNameRule, 0, len(rules)),
		authored: make([]NameRule, 0, len(rules)),
	}
	for _, r := range rules {
		c := compiledNameRule{target: category.Lookup(r.Category)}
		for _, kw := range r.Keywords {
			c.keywords = append(c.keywords, newKeyword(kw))
		}
		t.rules = append(t.rules, c)
		t.authored = append(t.authored, NameRule{
			Keywords: append([]string(nil), r.Keywords...),
			Category: r.Category,
		})
	}
	return t
}

// Match returns the first rule whose keywords all occur in name.
// name is expected to be normalized already.
func (t *NameTable) Match(name string) (Match, bool) {
	if name == "" {
		return Match{}, false
	}
	for i, r := range t.rules {
		if r.matches(name) {
			return Match{Category: r.target, Rule: i}, true
		}
	}
	return Match{}, false
}

func (r compiledNameRule) matches(name string) bool {
	if len(r.keywords) == 0 {
		return false
	}
	for _, kw := range r.keywords {
		if !kw.matches(name) {
			return false
		}
	}
	return true
}

// Len returns the number of rules
func (t *NameTable) Len() int { return len(t.rules) }

// Rules returns a copy of the authored rules in table order
func (t *NameTable) Rules() []NameRule {
	out := make([]NameRule, len(t.authored))
	for i, r := range t.authored {
		out[i] = NameRule{Keywords: append([]string(nil), r.Keywords...), Category: r.Category}
	}
	return out
}

// FieldKind is the three-valued outcome of a field rule scan
type FieldKind int

const (
	FieldNoMatch FieldKind = iota
	FieldDeclined
	FieldMatched
)

func (k FieldKind) String() string {
	switch k {
	case FieldDeclined:
		return "declined"
	case FieldMatched:
		return "matched"
	default:
		return "no_match"
	}
}

// FieldVerdict is the result of scanning upstream category text
type FieldVerdict struct {
	Kind     FieldKind
	Category category.ID // set when Kind is FieldMatched
	Rule     int         // set unless Kind is FieldNoMatch
}

// FieldTable is an immutable, ordered decision list over upstream category text
type FieldTable struct {
	rules    []compiledFieldRule
	authored []FieldRule
}

type compiledFieldRule struct {
	keyword  string
	declines bool
	target   category.ID
}

// CompileFieldTable compiles authored field rules, preserving their order
func CompileFieldTable(rules []FieldRule) *FieldTable {
	t := &FieldTable{
		rules:    make([]compiledFieldRule, 0, len(rules)),
		authored: append([]FieldRule(nil), rules...),
	}
	for _, r := range rules {
		c := compiledFieldRule{keyword: strings.ToLower(strings.TrimSpace(r.Keyword))}
		if r.Category == NoOpinion {
			c.declines = true
		} else {
			c.target = category.Lookup(r.Category)
		}
		t.rules = append(t.rules, c)
	}
	return t
}

// Match scans text for the first rule keyword it contains.
// Empty text never matches.
func (t *FieldTable) Match(text string) FieldVerdict {
	if text == "" {
		return FieldVerdict{Kind: FieldNoMatch}
	}
	for i, r := range t.rules {
		if r.keyword == "" || !strings.Contains(text, r.keyword) {
			continue
		}
		if r.declines {
			return FieldVerdict{Kind: FieldDeclined, Rule: i}
		}
		return FieldVerdict{Kind: FieldMatched, Category: r.target, Rule: i}
	}
	return FieldVerdict{Kind: FieldNoMatch}
}

// Len returns the number of rules
func (t *FieldTable) Len() int { return len(t.rules) }

// Rules returns a copy of the authored rules in table order
func (t *FieldTable) Rules() []FieldRule {
	return append([]FieldRule(nil), t.authored...)
}
