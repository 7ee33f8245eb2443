package rules

// DefaultFieldRules returns the decision list applied to upstream category
// text (the main category field first, then the category tags).
//
// Keywords match as plain substrings. Rules mapped to NoOpinion cover
// upstream categories too broad to trust; they stop the scan so the caller
// moves on to its next source instead of accepting a weak verdict.
func DefaultFieldRules() []FieldRule {
	out := make([]FieldRule, len(defaultFieldRules))
	copy(out, defaultFieldRules)
	return out
}

var defaultFieldRules = []FieldRule{
	// multi-word upstream categories
	{"plant-based", NoOpinion},
	{"breakfast cereal", "grain"},
	{"ice cream", "dairy"},
	{"frozen meal", NoOpinion},
	{"ready meal", NoOpinion},

	{"meat", "meat"},
	{"ham", "meat"},
	{"beef", "meat"},
	{"pork", "meat"},
	{"sausage", "meat"},
	{"deli", "meat"},
	{"poultry", "poultry"},
	{"chicken", "poultry"},
	{"turkey", "poultry"},
	{"fish", "seafood"},
	{"seafood", "seafood"},
	{"crustacean", "seafood"},
	{"cheese", "cheese"},
	{"dairy", "dairy"},
	{"milk", "dairy"},
	{"butter", "dairy"},
	{"cream", "dairy"},
	{"yogurt", "dairy"},
	{"egg", "egg"},
	{"bread", "grain"},
	{"cereal", "grain"},
	{"rice", "grain"},
	{"grain", "grain"},
	{"pasta", "pasta"},
	{"noodle", "pasta"},
	{"legume", "legume"},
	{"bean", "legume"},
	{"lentil", "legume"},
	{"nut", "nut"},
	{"seed", "nut"},
	{"spice", "spice"},
	{"herb", "spice"},
	{"seasoning", "spice"},
	{"sauce", "condiment"},
	{"condiment", "condiment"},
	{"dressing", "condiment"},
	{"mustard", "condiment"},
	{"ketchup", "condiment"},
	{"oil", "oil"},
	{"vinegar", "vinegar"},
	{"flour", "flour"},
	{"sugar", "sugar"},
	{"sweetener", "sugar"},
	{"honey", "sugar"},
	{"syrup", "sugar"},
	{"chocolate", "sugar"},
	{"candy", "sugar"},
	{"confectionery", "sugar"},
	{"baking", "leavening"},
	{"alcohol", "alcohol"},
	{"wine", "alcohol"},
	{"beer", "alcohol"},
	{"spirit", "alcohol"},
	{"soda", "pop"},
	{"soft drink", "pop"},
	{"juice", "juice"},
	{"coffee", "beverage"},
	{"tea", "beverage"},
	{"water", "beverage"},
	{"beverage", "beverage"},
	{"drink", "beverage"},

	// too ambiguous to resolve
	{"snack", NoOpinion},
	{"frozen", NoOpinion},
	{"canned", NoOpinion},
}
