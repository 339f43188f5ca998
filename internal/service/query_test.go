package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/internal/types"
)

func TestBuildCriteria(t *testing.T) {
	t.Run("should split and compact both lists", func(t *testing.T) {
		criteria, err := BuildCriteria(" eggs, tomato ,, cumin ", "cilantro , ", types.DietVegetarian)

		require.NoError(t, err)
		assert.Equal(t, []string{"eggs", "tomato", "cumin"}, criteria.IncludeIngredients)
		assert.Equal(t, []string{"cilantro"}, criteria.ExcludeIngredients)
		assert.Equal(t, types.DietVegetarian, criteria.Diet)
	})

	t.Run("should remove whitespace inside names", func(t *testing.T) {
		criteria, err := BuildCriteria("olive oil,\tsea salt", "", types.DietNone)

		require.NoError(t, err)
		assert.Equal(t, []string{"oliveoil", "seasalt"}, criteria.IncludeIngredients)
		assert.Empty(t, criteria.ExcludeIngredients)
	})

	t.Run("should drop repeats ignoring case", func(t *testing.T) {
		criteria, err := BuildCriteria("Eggs,eggs,EGGS,rice", "", types.DietNone)

		require.NoError(t, err)
		assert.Equal(t, []string{"Eggs", "rice"}, criteria.IncludeIngredients)
	})

	t.Run("should reject blank include lists", func(t *testing.T) {
		for _, raw := range []string{"", " ", "\t\n", " , ,", ",,,"} {
			_, err := BuildCriteria(raw, "eggs", types.DietVegan)

			assert.ErrorIs(t, err, ErrEmptyIngredients, "input %q", raw)
			assert.True(t, IsValidationError(err))
		}
	})

	t.Run("should accept every supported diet", func(t *testing.T) {
		for _, diet := range types.Diets {
			criteria, err := BuildCriteria("eggs", "", diet)

			require.NoError(t, err, "diet %q", diet)
			assert.Equal(t, diet, criteria.Diet)
		}
	})

	t.Run("should reject an unknown diet", func(t *testing.T) {
		_, err := BuildCriteria("eggs", "", types.Diet("paleo"))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "diet", validationErr.Field)
	})
}
