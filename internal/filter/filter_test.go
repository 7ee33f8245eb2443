package filter

import (
	"strings"
	"testing"
)

func TestIsCulinaryIngredient(t *testing.T) {
	tests := []struct {
		name   string
		want   bool
		reason string
	}{
		{"olive oil", true, ""},
		{"pizza margherita", false, "denylist:pizza"},
		{"generic snack mix 12345678", false, ReasonDigitRun},
		{"flour type 0000", true, ""},
		{"tomatoes 1234 5678", true, ""},
		{"potato chips", false, "denylist:chips"},
		{"instant noodles", false, "denylist:instant"},
		{strings.Repeat("a", 60), true, ""},
		{strings.Repeat("a", 61), false, ReasonTooLong},
		{strings.Repeat("é", 60), true, ""},
	}
	for _, tt := range tests {
		if got := IsCulinaryIngredient(tt.name, "", ""); got != tt.want {
			t.Errorf("IsCulinaryIngredient(%q) = %v, want %v", tt.name, got, tt.want)
		}
		if got := Reason(tt.name); got != tt.reason {
			t.Errorf("Reason(%q) = %q, want %q", tt.name, got, tt.reason)
		}
	}
}

func TestIsCulinaryIngredient_IgnoresCategoryText(t *testing.T) {
	if !IsCulinaryIngredient("butter", "pizzas", "en:frozen-dinners") {
		t.Error("Expected category text not to reject an ingredient name")
	}
}

func TestDenylistIsACopy(t *testing.T) {
	d := Denylist()
	d[0] = "salt"
	if Reason("salt") != "" {
		t.Error("Denylist() must not expose the package list")
	}
}
