package service

import (
	"strings"
	"unicode"

	"github.com/pageza/pantrychef/backend/internal/types"
)

// BuildCriteria turns the raw form input into validated search criteria.
// All whitespace is removed from both ingredient lists, which are then split on
// commas with blanks and repeats dropped. diet must be empty or one of types.Diets.
func BuildCriteria(rawInclude, rawExclude string, diet types.Diet) (types.SearchCriteria, error) {
	if !diet.Valid() {
		return types.SearchCriteria{}, &ValidationError{Field: "diet", Message: "unsupported diet"}
	}

	include := splitIngredients(rawInclude)
	if len(include) == 0 {
		return types.SearchCriteria{}, ErrEmptyIngredients
	}

	return types.SearchCriteria{
		IncludeIngredients: include,
		ExcludeIngredients: splitIngredients(rawExclude),
		Diet:               diet,
	}, nil
}

func splitIngredients(raw string) []string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	var out []string
	seen := make(map[string]bool)
	for _, item := range strings.Split(compact, ",") {
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
