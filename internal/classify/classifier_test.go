package classify

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
	"github.com/ppiankov/pantrymap/internal/rules"
)

func TestClassify_Scenarios(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		rec    model.Record
		kind   Kind
		want   category.ID
		source Source
		reason string
	}{
		{
			name:   "name rule wins over fields",
			rec:    model.Record{Name: "Extra Virgin Olive Oil", Primary: "en:sauces"},
			kind:   Classified,
			want:   category.Oil,
			source: SourceName,
		},
		{
			name:   "primary field when name is silent",
			rec:    model.Record{Name: "blorptang original", Primary: "en:Sauces"},
			kind:   Classified,
			want:   category.Condiment,
			source: SourcePrimary,
		},
		{
			name:   "no-opinion primary falls through to tags",
			rec:    model.Record{Name: "blorptang original", Primary: "Plant-based foods", Tags: "en:cheeses"},
			kind:   Classified,
			want:   category.Cheese,
			source: SourceTags,
		},
		{
			name:   "nothing matches",
			rec:    model.Record{Name: "blorptang original"},
			kind:   Unclassified,
			reason: ReasonNoMatch,
		},
		{
			name:   "denylisted name",
			rec:    model.Record{Name: "Frozen Pizza Margherita", Primary: "en:pizzas"},
			kind:   Filtered,
			reason: "denylist:pizza",
		},
		{
			name:   "digit run",
			rec:    model.Record{Name: "item 1234567"},
			kind:   Filtered,
			reason: "digit_run",
		},
		{
			name:   "single rune name",
			rec:    model.Record{Name: " x "},
			kind:   Filtered,
			reason: ReasonShortName,
		},
		{
			name:   "empty name",
			rec:    model.Record{},
			kind:   Filtered,
			reason: ReasonShortName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.rec)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.reason, res.Reason)
			if tt.kind == Classified {
				assert.Equal(t, tt.want, res.Category)
				assert.Equal(t, tt.source, res.Source)
			}
		})
	}
}

func TestClassify_NormalizesName(t *testing.T) {
	c := New()

	res := c.Classify(model.Record{Name: "  Cheddar \t  CHEESE  "})
	require.Equal(t, Classified, res.Kind)
	assert.Equal(t, "cheddar cheese", res.Name)
	assert.Equal(t, category.Cheese, res.Category)
}

func TestNormalizeName_InvalidUTF8(t *testing.T) {
	a := NormalizeName("Cheddar\xff\xfe Block")
	b := NormalizeName("cheddar\xc0 block")

	assert.True(t, utf8.ValidString(a))
	assert.Equal(t, "cheddar\uFFFD block", a)
	assert.Equal(t, a, b, "distinct invalid byte runs share one key")

	data, err := json.Marshal(map[string]int{a: 5})
	require.NoError(t, err)
	var back map[string]int
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Contains(t, back, a, "the written key matches the mapping key")
}

func TestClassify_ExplicitUnknownIsUnclassified(t *testing.T) {
	names := rules.CompileNameTable([]rules.NameRule{
		{Keywords: []string{"mystery"}, Category: "unknown"},
		{Keywords: []string{"mystery"}, Category: "produce"},
	})
	fields := rules.CompileFieldTable([]rules.FieldRule{
		{Keyword: "sauce", Category: "condiment"},
		{Keyword: "odd", Category: "not-a-category"},
	})
	c := New(WithTables(names, fields))

	res := c.Classify(model.Record{Name: "mystery box", Primary: "sauces"})
	assert.Equal(t, Unclassified, res.Kind)
	assert.Equal(t, ReasonUnknown, res.Reason)
	assert.Equal(t, SourceName, res.Source)

	res = c.Classify(model.Record{Name: "plain box", Primary: "odd things", Tags: "sauces"})
	assert.Equal(t, Unclassified, res.Kind, "an unknown primary verdict must not fall through to tags")
	assert.Equal(t, SourcePrimary, res.Source)
}

func TestClassify_NeverClassifiesAsUnknown(t *testing.T) {
	gofakeit.Seed(42)
	c := New()
	acc := NewAccumulator(true)

	for i := 0; i < 2000; i++ {
		rec := model.Record{
			Name:    randomProductName(),
			Primary: gofakeit.RandomString([]string{"", "en:sauces", "plant-based foods", "en:snacks", gofakeit.Word()}),
			Tags:    gofakeit.RandomString([]string{"", "en:cheeses", "en:beverages", gofakeit.Word()}),
			Labels:  gofakeit.RandomString([]string{"", "Vegan", "Vegetarian, Organic"}),
		}
		out := c.Evaluate(rec, true)
		if out.Result.Kind == Classified {
			require.True(t, out.Result.Category.Valid(), "classified %q as %s", rec.Name, out.Result.Category)
			require.NotNil(t, out.Meta)
		} else {
			require.Nil(t, out.Meta)
		}
		acc.Apply(out)
	}

	for name, id := range acc.Categories() {
		assert.NotEqual(t, category.Unknown, id, "mapping holds unknown for %q", name)
	}
	counts := acc.Counts()
	assert.Equal(t, 2000, counts.Classified+counts.Unclassified+counts.Filtered)
}

func TestClassify_Idempotent(t *testing.T) {
	gofakeit.Seed(7)
	c := New()

	for i := 0; i < 500; i++ {
		rec := model.Record{Name: randomProductName(), Primary: gofakeit.Word(), Tags: gofakeit.Word()}
		assert.Equal(t, c.Classify(rec), c.Classify(rec))
	}
}

func TestClassify_MemoDoesNotChangeResults(t *testing.T) {
	gofakeit.Seed(99)
	plain := New()
	memo := newMapMemo()
	memoised := New(WithMemo(memo))

	recs := make([]model.Record, 0, 600)
	for i := 0; i < 300; i++ {
		rec := model.Record{Name: randomProductName(), Primary: gofakeit.Word()}
		recs = append(recs, rec, rec)
	}
	for _, rec := range recs {
		assert.Equal(t, plain.Classify(rec), memoised.Classify(rec), rec.Name)
	}
	assert.NotZero(t, memo.hits, "repeated names should hit the memo")
}

func TestClassify_CorruptMemoEntryIsIgnored(t *testing.T) {
	memo := newMapMemo()
	memo.data["cheddar"] = []byte{9, 9}
	c := New(WithMemo(memo))

	res := c.Classify(model.Record{Name: "cheddar"})
	require.Equal(t, Classified, res.Kind)
	assert.Equal(t, category.Cheese, res.Category)
}

func TestEncodeMatch(t *testing.T) {
	m, ok, valid := decodeMatch(encodeMatch(rules.Match{Category: category.Spice, Rule: 517}, true))
	require.True(t, valid)
	assert.True(t, ok)
	assert.Equal(t, rules.Match{Category: category.Spice, Rule: 517}, m)

	_, ok, valid = decodeMatch(encodeMatch(rules.Match{}, false))
	assert.True(t, valid)
	assert.False(t, ok)

	_, _, valid = decodeMatch(nil)
	assert.False(t, valid)
}

func randomProductName() string {
	switch gofakeit.Number(0, 4) {
	case 0:
		return gofakeit.Fruit()
	case 1:
		return gofakeit.Vegetable()
	case 2:
		return gofakeit.Snack()
	case 3:
		return gofakeit.Adjective() + " " + gofakeit.Noun()
	default:
		return strings.ToUpper(gofakeit.Dinner())
	}
}

type mapMemo struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMapMemo() *mapMemo {
	return &mapMemo{data: make(map[string][]byte)}
}

func (m *mapMemo) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if ok {
		m.hits++
	}
	return v, ok
}

func (m *mapMemo) Set(key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
