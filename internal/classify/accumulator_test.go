package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

func TestAccumulator_CountsAndMapping(t *testing.T) {
	c := New()
	acc := NewAccumulator(true)

	recs := []model.Record{
		{Name: "Cheddar"},
		{Name: "cola"},
		{Name: "blorptang"},
		{Name: "blorptang"},
		{Name: "pepperoni pizza"},
		{Name: "x"},
	}
	for _, rec := range recs {
		acc.Apply(c.Evaluate(rec, true))
	}

	assert.Equal(t, model.Counts{Classified: 2, Unclassified: 2, Filtered: 2}, acc.Counts())
	assert.Equal(t, map[string]category.ID{"cheddar": category.Cheese, "cola": category.Pop}, acc.Categories())
	assert.Len(t, acc.Meta(), 2)
	assert.Equal(t, map[string]int{"name": 2}, acc.DecidedBy())
	assert.Equal(t, map[string]int{"denylist:pizza": 1, ReasonShortName: 1}, acc.FilterReasons())
	assert.Equal(t, []model.NameCount{{Name: "blorptang", Count: 2}}, acc.TopUnclassified(10))
}

func TestAccumulator_LastWriteWins(t *testing.T) {
	acc := NewAccumulator(false)

	acc.Apply(Outcome{Result: Result{Kind: Classified, Name: "miso", Category: category.Pantry, Source: SourceName}})
	acc.Apply(Outcome{Result: Result{Kind: Classified, Name: "miso", Category: category.Condiment, Source: SourcePrimary}})

	assert.Equal(t, category.Condiment, acc.Categories()["miso"])
	assert.Equal(t, 2, acc.Counts().Classified)
	assert.Nil(t, acc.Meta())
}

func TestAccumulator_RefusesUnknown(t *testing.T) {
	acc := NewAccumulator(false)

	acc.Apply(Outcome{Result: Result{Kind: Classified, Name: "odd", Category: category.Unknown}})

	assert.Empty(t, acc.Categories())
	assert.Equal(t, 1, acc.Counts().Unclassified)
}

func TestAccumulator_Distribution(t *testing.T) {
	acc := NewAccumulator(false)
	for _, r := range []Result{
		{Kind: Classified, Name: "a", Category: category.Pantry},
		{Kind: Classified, Name: "b", Category: category.Produce},
		{Kind: Classified, Name: "c", Category: category.Produce},
	} {
		acc.Apply(Outcome{Result: r})
	}

	dist := acc.Distribution()
	require.Len(t, dist, 2)
	assert.Equal(t, model.CategoryCount{Ordinal: 0, Category: "produce", Count: 2}, dist[0])
	assert.Equal(t, model.CategoryCount{Ordinal: 23, Category: "pantry", Count: 1}, dist[1])
}

func TestAccumulator_TopUnclassifiedOrdering(t *testing.T) {
	acc := NewAccumulator(false)
	for _, name := range []string{"b", "a", "c", "c", "a", "c"} {
		acc.Apply(Outcome{Result: Result{Kind: Unclassified, Name: name}})
	}

	assert.Equal(t, []model.NameCount{{Name: "c", Count: 3}, {Name: "a", Count: 2}}, acc.TopUnclassified(2))
	assert.Nil(t, acc.TopUnclassified(0))
}
