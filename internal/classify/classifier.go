// Package classify implements the per-record classification pipeline:
// filter, name rules, then the primary and tag category fields.
package classify

import (
	"encoding/binary"
	"time"
	"unicode/utf8"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/filter"
	"github.com/ppiankov/pantrymap/internal/model"
	"github.com/ppiankov/pantrymap/internal/rules"
)

// minNameLength is the shortest normalized name that is classified at all
const minNameLength = 2

// Memo caches name-table verdicts by normalized name. Implementations must
// be safe for concurrent use.
type Memo interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
}

// Classifier classifies records against a pair of rule tables.
// It holds no per-run state and may be shared between goroutines.
type Classifier struct {
	names  *rules.NameTable
	fields *rules.FieldTable
	memo   Memo
}

// Option configures a Classifier
type Option func(*Classifier)

// WithMemo memoises name-table verdicts. The memo never changes results.
func WithMemo(m Memo) Option {
	return func(c *Classifier) { c.memo = m }
}

// WithTables replaces the built-in rule tables
func WithTables(names *rules.NameTable, fields *rules.FieldTable) Option {
	return func(c *Classifier) {
		c.names = names
		c.fields = fields
	}
}

// New creates a classifier over the built-in rule tables
func New(opts ...Option) *Classifier {
	names, fields := rules.Default()
	c := &Classifier{names: names, fields: fields}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify decides the outcome for one record. It never fails: absent
// fields behave as empty strings.
func (c *Classifier) Classify(rec model.Record) Result {
	name := NormalizeName(rec.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		return Result{Kind: Filtered, Name: name, Reason: ReasonShortName}
	}

	primary := NormalizeText(rec.Primary)
	tags := NormalizeText(rec.Tags)

	if !filter.IsCulinaryIngredient(name, primary, tags) {
		return Result{Kind: Filtered, Name: name, Reason: filter.Reason(name)}
	}

	v := c.resolve(name, primary, tags)
	switch v.state {
	case resolved:
		return Result{Kind: Classified, Name: name, Category: v.category, Source: v.source, Rule: v.rule}
	case explicitlyUnknown:
		return Result{Kind: Unclassified, Name: name, Source: v.source, Rule: v.rule, Reason: ReasonUnknown}
	default:
		return Result{Kind: Unclassified, Name: name, Reason: ReasonNoMatch}
	}
}

// Evaluate classifies rec and, when withMeta is set and the record is
// classified, builds its metadata.
func (c *Classifier) Evaluate(rec model.Record, withMeta bool) Outcome {
	res := c.Classify(rec)
	out := Outcome{Result: res}
	if withMeta && res.Kind == Classified {
		meta := BuildMetadata(res.Category, rec)
		out.Meta = &meta
	}
	return out
}

// resolve walks the sources in priority order and stops at the first one
// that reaches a verdict, including an explicit unknown.
func (c *Classifier) resolve(name, primary, tags string) verdict {
	if m, ok := c.matchName(name); ok {
		return verdictFor(m.Category, SourceName, m.Rule)
	}

	if fv := c.fields.Match(primary); fv.Kind == rules.FieldMatched {
		return verdictFor(fv.Category, SourcePrimary, fv.Rule)
	}

	if fv := c.fields.Match(tags); fv.Kind == rules.FieldMatched {
		return verdictFor(fv.Category, SourceTags, fv.Rule)
	}

	return verdict{state: undetermined}
}

func (c *Classifier) matchName(name string) (rules.Match, bool) {
	if c.memo == nil {
		return c.names.Match(name)
	}
	if b, found := c.memo.Get(name); found {
		if m, ok, valid := decodeMatch(b); valid {
			return m, ok
		}
	}
	m, ok := c.names.Match(name)
	_ = c.memo.Set(name, encodeMatch(m, ok), 0)
	return m, ok
}

// encodeMatch packs a name verdict as [matched, category, rule(uvarint)]
func encodeMatch(m rules.Match, ok bool) []byte {
	if !ok {
		return []byte{0}
	}
	buf := make([]byte, 2, 2+binary.MaxVarintLen64)
	buf[0] = 1
	buf[1] = byte(m.Category)
	return binary.AppendUvarint(buf, uint64(m.Rule))
}

func decodeMatch(b []byte) (rules.Match, bool, bool) {
	if len(b) == 1 && b[0] == 0 {
		return rules.Match{}, false, true
	}
	if len(b) < 3 || b[0] != 1 {
		return rules.Match{}, false, false
	}
	rule, n := binary.Uvarint(b[2:])
	if n <= 0 {
		return rules.Match{}, false, false
	}
	return rules.Match{Category: category.ID(b[1]), Rule: int(rule)}, true, true
}
