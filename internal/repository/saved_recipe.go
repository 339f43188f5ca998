// Package repository implements the service stores on top of GORM and Redis.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// SavedRecipeStore keeps saved recipe links in the saved_recipes table.
type SavedRecipeStore struct {
	db *gorm.DB
}

func NewSavedRecipeStore(db *gorm.DB) *SavedRecipeStore {
	return &SavedRecipeStore{db: db}
}

// Insert refreshes the recipe's display row and adds the link in one transaction.
func (s *SavedRecipeStore) Insert(ctx context.Context, link *model.SavedRecipe, display model.Recipe) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"updated_at", "title", "description", "image_url",
				"cuisine_type", "cooking_time", "source_url", "dish_types",
			}),
		}).Create(&display).Error
		if err != nil {
			return fmt.Errorf("upsert recipe %d: %w", display.ID, err)
		}

		if err := tx.Omit(clause.Associations).Create(link).Error; err != nil {
			return fmt.Errorf("insert saved recipe: %w", err)
		}
		return nil
	})
}

// ListByUser returns userID's links with their recipe rows, newest first.
func (s *SavedRecipeStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedRecipe, error) {
	links := []model.SavedRecipe{}
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (s *SavedRecipeStore) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavedRecipe{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
