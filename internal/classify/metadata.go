package classify

import (
	"math"
	"strconv"
	"strings"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/model"
)

// BuildMetadata assembles the sparse metadata record for a classified row.
// Each numeric field parses on its own; a malformed value is dropped without
// affecting the others.
func BuildMetadata(id category.ID, rec model.Record) model.Metadata {
	meta := model.Metadata{Category: uint8(id)}

	labels := strings.ToLower(rec.Labels)
	if strings.Contains(labels, "vegan") {
		meta.Vegan = true
	} else if strings.Contains(labels, "vegetarian") {
		meta.Vegetarian = true
	}

	meta.Allergens = strings.TrimSpace(rec.Allergens)

	n := rec.Nutrition
	if v, ok := parseNumber(n.EnergyKcal); ok {
		kcal := int64(math.RoundToEven(v))
		meta.Kcal = &kcal
	}
	meta.Protein = rounded(n.Protein, 1)
	meta.Carbs = rounded(n.Carbs, 1)
	meta.Fat = rounded(n.Fat, 1)
	meta.Fiber = rounded(n.Fiber, 1)
	meta.Sodium = rounded(n.Sodium, 3)

	return meta
}

func rounded(raw string, places int) *float64 {
	v, ok := parseNumber(raw)
	if !ok {
		return nil
	}
	r := roundTo(v, places)
	return &r
}

// roundTo rounds the exact binary value of v to the given number of decimal
// places, ties to even. 0.15 is stored just below 0.15 and rounds to 0.1.
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
