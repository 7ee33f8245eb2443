package model

// Record is one raw row from the bulk source. Every field may be empty.
type Record struct {
	Name      string // product_name
	Primary   string // main_category_en
	Tags      string // categories_tags
	Labels    string // labels_en
	Allergens string // allergens_en

	Nutrition NutritionFields
}

// NutritionFields holds the raw per-100g values exactly as they appear in the source
type NutritionFields struct {
	EnergyKcal string
	Protein    string
	Carbs      string
	Fat        string
	Fiber      string
	Sodium     string
}

// Metadata is the sparse per-name record of the optional metadata artifact.
// Numeric fields are pointers so that a parsed zero survives while a missing
// or malformed value is omitted.
type Metadata struct {
	Category   uint8    `json:"cat"`
	Vegan      bool     `json:"vegan,omitempty"`
	Vegetarian bool     `json:"vegetarian,omitempty"`
	Allergens  string   `json:"allergens,omitempty"`
	Kcal       *int64   `json:"kcal,omitempty"`
	Protein    *float64 `json:"protein,omitempty"`
	Carbs      *float64 `json:"carbs,omitempty"`
	Fat        *float64 `json:"fat,omitempty"`
	Fiber      *float64 `json:"fiber,omitempty"`
	Sodium     *float64 `json:"sodium,omitempty"`
}

// Ingredient is one entry looked up from a built artifact
type Ingredient struct {
	Name     string    `json:"name"`
	Ordinal  uint8     `json:"ordinal"`
	Category string    `json:"category"`
	Meta     *Metadata `json:"meta,omitempty"`
}
