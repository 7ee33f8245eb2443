package category

import "testing"

func TestOrdinalsAreStable(t *testing.T) {
	// The artifact stores ordinals; these values are a compatibility contract.
	want := []string{
		"produce", "meat", "poultry", "seafood", "egg", "cheese", "dairy",
		"grain", "pasta", "legume", "nut", "spice", "condiment", "oil",
		"vinegar", "flour", "sugar", "leavening", "alcohol", "pop", "juice",
		"beverage", "unknown", "pantry",
	}
	if Count != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), Count)
	}
	for i, name := range want {
		if got := ID(i).String(); got != name {
			t.Errorf("ID(%d).String() = %q, want %q", i, got, name)
		}
	}
	if Unknown != 22 || Pantry != 23 || Produce != 0 {
		t.Errorf("Sentinel ordinals moved: unknown=%d pantry=%d produce=%d", Unknown, Pantry, Produce)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  ID
	}{
		{"oil", Oil},
		{"  Pantry ", Pantry},
		{"POP", Pop},
		{"unknown", Unknown},
		{"snacks", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		if got := Lookup(tt.input); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, id := range All() {
		if id == Unknown && id.Valid() {
			t.Error("Expected Unknown to be invalid")
		}
		if id != Unknown && !id.Valid() {
			t.Errorf("Expected %v to be valid", id)
		}
	}
	if ID(200).Valid() {
		t.Error("Expected out-of-range ID to be invalid")
	}
	if ID(200).String() != "unknown" {
		t.Errorf("Expected out-of-range ID to render as unknown, got %q", ID(200).String())
	}
}

func TestNamesIsACopy(t *testing.T) {
	n := Names()
	n[0] = "mutated"
	if Produce.String() != "produce" {
		t.Error("Names() must not expose the registry")
	}
}
