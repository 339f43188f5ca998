package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSONBStringArray source %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the display row stored in the recipes table. Saved recipe links
// reference it by the provider's recipe id.
type Recipe struct {
	ID          int64            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	ImageURL    string           `gorm:"size:512" json:"image_url"`
	CuisineType string           `gorm:"size:100" json:"cuisine_type"`
	CookingTime int              `json:"cooking_time"`
	SourceURL   string           `gorm:"size:512" json:"source_url"`
	DishTypes   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dish_types"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// PlaceholderImage is shown for recipes the provider sent without an image.
const PlaceholderImage = "/static/recipe-placeholder.svg"

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Original string `json:"original"`
}

// RecipeDetail is the full record the provider returns for one recipe.
// Fields the provider may omit are pointers; Card applies the display fallbacks.
// A RecipeDetail is not modified after NewRecipeDetail returns it.
type RecipeDetail struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Image          *string      `json:"image,omitempty"`
	SourceName     *string      `json:"sourceName,omitempty"`
	SourceURL      *string      `json:"sourceUrl,omitempty"`
	HealthScore    *float64     `json:"healthScore,omitempty"`
	ReadyInMinutes *int         `json:"readyInMinutes,omitempty"`
	Servings       *int         `json:"servings,omitempty"`
	Summary        *string      `json:"summary,omitempty"`
	Ingredients    []Ingredient `json:"extendedIngredients"`
	Cuisines       []string     `json:"cuisines"`
	DishTypes      []string     `json:"dishTypes"`
}

// NewRecipeDetail copies the slices of d so the result shares no memory with the caller.
func NewRecipeDetail(d RecipeDetail) RecipeDetail {
	d.Ingredients = append([]Ingredient{}, d.Ingredients...)
	d.Cuisines = append([]string{}, d.Cuisines...)
	d.DishTypes = append([]string{}, d.DishTypes...)
	return d
}

// RecipeCard is the presentation-ready view of a RecipeDetail.
type RecipeCard struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	ImageURL      string   `json:"image_url"`
	SourceURL     string   `json:"source_url,omitempty"`
	SourceName    string   `json:"source_name,omitempty"`
	ReadyInLabel  string   `json:"ready_in_label,omitempty"`
	ServingsLabel string   `json:"servings_label,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	Ingredients   []string `json:"ingredients"`
	Cuisines      []string `json:"cuisines"`
	DishTypes     []string `json:"dish_types"`
}

// Card renders d with the fallbacks for missing fields: a placeholder image,
// "Untitled recipe" for an empty title, and no label for absent or zero
// preparation time and servings.
func (d RecipeDetail) Card() RecipeCard {
	card := RecipeCard{
		ID:          d.ID,
		Title:       d.Title,
		ImageURL:    PlaceholderImage,
		SourceURL:   stringOr(d.SourceURL, ""),
		SourceName:  stringOr(d.SourceName, ""),
		Summary:     stringOr(d.Summary, ""),
		Ingredients: make([]string, 0, len(d.Ingredients)),
		Cuisines:    append([]string{}, d.Cuisines...),
		DishTypes:   append([]string{}, d.DishTypes...),
	}
	if card.Title == "" {
		card.Title = "Untitled recipe"
	}
	if img := stringOr(d.Image, ""); img != "" {
		card.ImageURL = img
	}
	if d.ReadyInMinutes != nil && *d.ReadyInMinutes > 0 {
		card.ReadyInLabel = fmt.Sprintf("%d minutes", *d.ReadyInMinutes)
	}
	if d.Servings != nil && *d.Servings > 0 {
		card.ServingsLabel = fmt.Sprintf("%d servings", *d.Servings)
	}
	for _, ing := range d.Ingredients {
		if ing.Original != "" {
			card.Ingredients = append(card.Ingredients, ing.Original)
		}
	}
	return card
}

// Column limits of the recipes table.
const (
	maxTitleLen   = 255
	maxURLLen     = 512
	maxCuisineLen = 100
)

// DisplayRow converts d into the recipes table row used by the saved recipes list.
// Text is cut to the column sizes so an oversized provider value cannot fail the insert.
func (d RecipeDetail) DisplayRow() Recipe {
	row := Recipe{
		ID:          d.ID,
		Title:       truncate(d.Title, maxTitleLen),
		Description: stringOr(d.Summary, ""),
		ImageURL:    truncate(stringOr(d.Image, ""), maxURLLen),
		SourceURL:   truncate(stringOr(d.SourceURL, ""), maxURLLen),
		DishTypes:   JSONBStringArray(append([]string{}, d.DishTypes...)),
	}
	if len(d.Cuisines) > 0 {
		row.CuisineType = truncate(d.Cuisines[0], maxCuisineLen)
	}
	if d.ReadyInMinutes != nil {
		row.CookingTime = *d.ReadyInMinutes
	}
	return row
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
