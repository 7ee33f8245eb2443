package rules

import (
	"strings"
	"sync"
)

var (
	defaultOnce  sync.Once
	defaultNames *NameTable
	defaultField *FieldTable
)

// Default returns the compiled built-in tables. They are compiled once per
// process and shared; both are read-only.
func Default() (*NameTable, *FieldTable) {
	defaultOnce.Do(func() {
		defaultNames = CompileNameTable(defaultNameRules)
		defaultField = CompileFieldTable(defaultFieldRules)
	})
	return defaultNames, defaultField
}

// Shadow describes a rule that can never fire because an earlier rule
// matches every input it would match.
type Shadow struct {
	Rule     int    `json:"rule" yaml:"rule"`
	By       int    `json:"by" yaml:"by"`
	Keywords string `json:"keywords" yaml:"keywords"`
	Category string `json:"category" yaml:"category"`
	Winner   string `json:"winner" yaml:"winner"`
}

// Conflict reports whether the shadowing rule targets a different category
func (s Shadow) Conflict() bool {
	return s.Category != s.Winner
}

// LintNames reports name rules shadowed by an earlier identical or broader
// rule. It is a maintenance aid; it never reorders or drops rules.
func LintNames(t *NameTable) []Shadow {
	var out []Shadow
	for j := range t.rules {
		for i := 0; i < j; i++ {
			if !nameRuleImplies(t.rules[i], t.rules[j]) {
				continue
			}
			out = append(out, Shadow{
				Rule:     j,
				By:       i,
				Keywords: strings.Join(t.authored[j].Keywords, " + "),
				Category: t.authored[j].Category,
				Winner:   t.authored[i].Category,
			})
			break
		}
	}
	return out
}

// nameRuleImplies reports whether any name matched by later is also matched
// by earlier: each earlier keyword must be implied by some later keyword.
func nameRuleImplies(earlier, later compiledNameRule) bool {
	if len(earlier.keywords) == 0 || len(later.keywords) == 0 {
		return false
	}
	for _, ek := range earlier.keywords {
		implied := false
		for _, lk := range later.keywords {
			if keywordImplies(ek, lk) {
				implied = true
				break
			}
		}
		if !implied {
			return false
		}
	}
	return true
}

func keywordImplies(earlier, later keyword) bool {
	if earlier.text == later.text {
		return true
	}
	if earlier.phrase {
		return strings.Contains(later.text, earlier.text)
	}
	return ContainsWord(later.text, earlier.text)
}

// LintFields reports field rules whose keyword contains an earlier rule's
// keyword, so the earlier rule always fires first.
func LintFields(t *FieldTable) []Shadow {
	var out []Shadow
	for j, later := range t.rules {
		for i := 0; i < j; i++ {
			earlier := t.rules[i]
			if earlier.keyword == "" || !strings.Contains(later.keyword, earlier.keyword) {
				continue
			}
			out = append(out, Shadow{
				Rule:     j,
				By:       i,
				Keywords: t.authored[j].Keyword,
				Category: fieldTarget(t.authored[j]),
				Winner:   fieldTarget(t.authored[i]),
			})
			break
		}
	}
	return out
}

func fieldTarget(r FieldRule) string {
	if r.Category == NoOpinion {
		return "(no opinion)"
	}
	return r.Category
}
