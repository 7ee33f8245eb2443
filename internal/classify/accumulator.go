package classify

import (
	"sort"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

// maxTrackedUnclassified bounds the distinct unclassified names counted for
// the run report.
const maxTrackedUnclassified = 100_000

// Accumulator owns the output mappings and run counters. Outcomes must be
// applied in source order; it is not safe for concurrent use.
type Accumulator struct {
	withMeta bool

	categories map[string]category.ID
	meta       map[string]model.Metadata

	counts        model.Counts
	decidedBy     map[string]int
	filterReasons map[string]int
	unclassified  map[string]int
}

// NewAccumulator creates an empty accumulator
func NewAccumulator(withMeta bool) *Accumulator {
	a := &Accumulator{
		withMeta:      withMeta,
		categories:    make(map[string]category.ID),
		decidedBy:     make(map[string]int),
		filterReasons: make(map[string]int),
		unclassified:  make(map[string]int),
	}
	if withMeta {
		a.meta = make(map[string]model.Metadata)
	}
	return a
}

// Apply records one outcome. Exactly one counter is incremented. A
// classified name overwrites any earlier entry for the same name.
func (a *Accumulator) Apply(o Outcome) {
	res := o.Result
	switch res.Kind {
	case Classified:
		if !res.Category.Valid() {
			// never persist the sentinel
			a.countUnclassified(res.Name)
			return
		}
		a.counts.Classified++
		a.decidedBy[res.Source.String()]++
		a.categories[res.Name] = res.Category
		if a.withMeta && o.Meta != nil {
			a.meta[res.Name] = *o.Meta
		}
	case Unclassified:
		a.countUnclassified(res.Name)
	default:
		a.counts.Filtered++
		if res.Reason != "" {
			a.filterReasons[res.Reason]++
		}
	}
}

func (a *Accumulator) countUnclassified(name string) {
	a.counts.Unclassified++
	if _, ok := a.unclassified[name]; ok || len(a.unclassified) < maxTrackedUnclassified {
		a.unclassified[name]++
	}
}

// Categories returns the name → category mapping
func (a *Accumulator) Categories() map[string]category.ID {
	return a.categories
}

// Meta returns the name → metadata mapping, or nil when metadata is disabled
func (a *Accumulator) Meta() map[string]model.Metadata {
	return a.meta
}

// Counts returns the outcome counters
func (a *Accumulator) Counts() model.Counts {
	return a.counts
}

// DecidedBy returns how many classifications each source produced
func (a *Accumulator) DecidedBy() map[string]int {
	return copyCounts(a.decidedBy)
}

// FilterReasons returns how many records each filter heuristic rejected
func (a *Accumulator) FilterReasons() map[string]int {
	return copyCounts(a.filterReasons)
}

// Distribution counts final mapping entries per category, in ordinal order.
// Categories with no entries are omitted.
func (a *Accumulator) Distribution() []model.CategoryCount {
	var per [category.Count]int
	for _, id := range a.categories {
		per[id]++
	}
	var out []model.CategoryCount
	for _, id := range category.All() {
		if per[id] == 0 {
			continue
		}
		out = append(out, model.CategoryCount{Ordinal: int(id), Category: id.String(), Count: per[id]})
	}
	return out
}

// TopUnclassified returns the n most frequent unclassified names, ties broken by name
func (a *Accumulator) TopUnclassified(n int) []model.NameCount {
	if n <= 0 {
		return nil
	}
	out := make([]model.NameCount, 0, len(a.unclassified))
	for name, count := range a.unclassified {
		out = append(out, model.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
