package model

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeDetailDecodesOptionalFields(t *testing.T) {
	payload := `{
		"id": 716429,
		"title": "Pasta with Garlic",
		"image": "https://img.example/716429.jpg",
		"readyInMinutes": 45,
		"servings": 2,
		"extendedIngredients": [{"original": "1 tbsp butter"}, {"original": "2 cloves garlic"}],
		"cuisines": ["Italian"],
		"dishTypes": ["lunch", "main course"]
	}`

	var d RecipeDetail
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	assert.Equal(t, int64(716429), d.ID)
	require.NotNil(t, d.ReadyInMinutes)
	assert.Equal(t, 45, *d.ReadyInMinutes)
	assert.Nil(t, d.SourceURL)
	assert.Nil(t, d.HealthScore)
	assert.Len(t, d.Ingredients, 2)
}

func TestCardFallbacks(t *testing.T) {
	zero := 0
	card := RecipeDetail{ID: 7, Servings: &zero}.Card()

	assert.Equal(t, "Untitled recipe", card.Title)
	assert.Equal(t, PlaceholderImage, card.ImageURL)
	assert.Empty(t, card.ReadyInLabel)
	assert.Empty(t, card.ServingsLabel)
	assert.Empty(t, card.SourceURL)
	assert.NotNil(t, card.Ingredients)
}

func TestCardLabels(t *testing.T) {
	img := "https://img.example/1.jpg"
	src := "https://blog.example/soup"
	ready, servings := 30, 4
	d := RecipeDetail{
		ID:             1,
		Title:          "Tomato Soup",
		Image:          &img,
		SourceURL:      &src,
		ReadyInMinutes: &ready,
		Servings:       &servings,
		Ingredients:    []Ingredient{{Original: "4 tomatoes"}, {Original: ""}},
	}

	card := d.Card()
	assert.Equal(t, img, card.ImageURL)
	assert.Equal(t, src, card.SourceURL)
	assert.Equal(t, "30 minutes", card.ReadyInLabel)
	assert.Equal(t, "4 servings", card.ServingsLabel)
	assert.Equal(t, []string{"4 tomatoes"}, card.Ingredients)
}

func TestNewRecipeDetailCopiesSlices(t *testing.T) {
	cuisines := []string{"Mexican"}
	d := NewRecipeDetail(RecipeDetail{ID: 2, Cuisines: cuisines})
	cuisines[0] = "changed"
	assert.Equal(t, "Mexican", d.Cuisines[0])
}

func TestDisplayRow(t *testing.T) {
	summary := "A quick soup."
	ready := 20
	row := RecipeDetail{
		ID:             3,
		Title:          "Soup",
		Summary:        &summary,
		ReadyInMinutes: &ready,
		Cuisines:       []string{"French", "European"},
	}.DisplayRow()

	assert.Equal(t, int64(3), row.ID)
	assert.Equal(t, "A quick soup.", row.Description)
	assert.Equal(t, "French", row.CuisineType)
	assert.Equal(t, 20, row.CookingTime)
	assert.Empty(t, row.ImageURL)
}

func TestDisplayRowFitsColumns(t *testing.T) {
	image := "https://img.example.com/" + strings.Repeat("a", 600)
	row := RecipeDetail{
		ID:       4,
		Title:    strings.Repeat("é", 300),
		Image:    &image,
		Cuisines: []string{strings.Repeat("x", 150)},
	}.DisplayRow()

	assert.Equal(t, 255, utf8.RuneCountInString(row.Title))
	assert.True(t, utf8.ValidString(row.Title))
	assert.Len(t, row.ImageURL, 512)
	assert.Len(t, row.CuisineType, 100)
}

func TestJSONBStringArrayRoundTrip(t *testing.T) {
	v, err := JSONBStringArray{"a", "b"}.Value()
	require.NoError(t, err)

	var out JSONBStringArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, JSONBStringArray{"a", "b"}, out)

	empty, err := JSONBStringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)
}
