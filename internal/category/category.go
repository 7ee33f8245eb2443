// Package category defines the closed, ordered set of culinary categories.
//
// Downstream consumers persist only the ordinal of a category, so the order of
// the constants below is part of the artifact format and must never change.
// New categories may only be appended.
package category

import "strings"

// ID is the stable ordinal of a category
type ID uint8

const (
	Produce ID = iota
	Meat
	Poultry
	Seafood
	Egg
	Cheese
	Dairy
	Grain
	Pasta
	Legume
	Nut
	Spice
	Condiment
	Oil
	Vinegar
	Flour
	Sugar
	Leavening
	Alcohol
	Pop
	Juice
	Beverage
	Unknown // reserved sentinel, never a successful classification
	Pantry
)

var names = [...]string{
	Produce:   "produce",
	Meat:      "meat",
	Poultry:   "poultry",
	Seafood:   "seafood",
	Egg:       "egg",
	Cheese:    "cheese",
	Dairy:     "dairy",
	Grain:     "grain",
	Pasta:     "pasta",
	Legume:    "legume",
	Nut:       "nut",
	Spice:     "spice",
	Condiment: "condiment",
	Oil:       "oil",
	Vinegar:   "vinegar",
	Flour:     "flour",
	Sugar:     "sugar",
	Leavening: "leavening",
	Alcohol:   "alcohol",
	Pop:       "pop",
	Juice:     "juice",
	Beverage:  "beverage",
	Unknown:   "unknown",
	Pantry:    "pantry",
}

var byName = func() map[string]ID {
	m := make(map[string]ID, len(names))
	for i, n := range names {
		m[n] = ID(i)
	}
	return m
}()

// Count is the number of registered categories, including Unknown
const Count = len(names)

// All returns every category in ordinal order
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Names returns every category name in ordinal order
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}

// Lookup resolves a category name to its ID.
// Unrecognised names resolve to Unknown rather than failing.
func Lookup(name string) ID {
	if id, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id
	}
	return Unknown
}

// String returns the category name
func (id ID) String() string {
	if int(id) < Count {
		return names[id]
	}
	return names[Unknown]
}

// Valid reports whether id is a registered category other than Unknown
func (id ID) Valid() bool {
	return int(id) < Count && id != Unknown
}
