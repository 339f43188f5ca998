package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedRecipe links a user to a provider recipe. Saving twice creates two rows
// unless the schema adds a uniqueness constraint.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipeID  int64     `gorm:"not null;index" json:"recipe_id"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID;references:ID" json:"recipe,omitempty"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}
