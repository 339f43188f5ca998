package types

// Diet is one of the dietary filters the recipe provider understands.
type Diet string

const (
	DietNone       Diet = ""
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietGlutenFree Diet = "gluten-free"
	DietDairyFree  Diet = "dairy-free"
	DietLowCarb    Diet = "low-carb"
	DietKeto       Diet = "keto"
)

// Diets lists the supported filters in display order.
var Diets = []Diet{
	DietVegetarian,
	DietVegan,
	DietGlutenFree,
	DietDairyFree,
	DietLowCarb,
	DietKeto,
}

// Valid reports whether d is empty or one of Diets.
func (d Diet) Valid() bool {
	if d == DietNone {
		return true
	}
	for _, known := range Diets {
		if d == known {
			return true
		}
	}
	return false
}

// SearchCriteria is a validated ingredient query. IncludeIngredients is never empty.
type SearchCriteria struct {
	IncludeIngredients []string `json:"include_ingredients"`
	ExcludeIngredients []string `json:"exclude_ingredients,omitempty"`
	Diet               Diet     `json:"diet,omitempty"`
}

// SearchRequest is the query string accepted by the search endpoint.
type SearchRequest struct {
	Ingredients string `form:"ingredients"`
	Exclude     string `form:"exclude"`
	Diet        string `form:"diet" binding:"omitempty,oneof=vegetarian vegan gluten-free dairy-free low-carb keto"`
}
