package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// SavedRecipeService associates recipes with the signed-in user.
type SavedRecipeService struct {
	store    SavedRecipeStore
	provider RecipeProvider
	metrics  metrics.Recorder
	newID    func() uuid.UUID
	now      func() time.Time
}

// NewSavedRecipeService creates a new SavedRecipeService instance
func NewSavedRecipeService(store SavedRecipeStore, p RecipeProvider, recorder metrics.Recorder) *SavedRecipeService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &SavedRecipeService{
		store:    store,
		provider: p,
		metrics:  recorder,
		newID:    uuid.New,
		now:      time.Now,
	}
}

// Save links recipe to the session's user with a single insert. It is not
// idempotent: saving the same recipe twice yields two links. Failures are not retried.
//
// Only recipe.ID is taken from the caller. The display row shared by every
// user's saved list is built from a fresh provider lookup.
func (s *SavedRecipeService) Save(ctx context.Context, sess *types.Session, recipe model.RecipeDetail) (*model.SavedRecipe, error) {
	if sess == nil {
		s.metrics.RecordSave("not_authenticated")
		return nil, ErrNotAuthenticated
	}
	if recipe.ID <= 0 {
		return nil, &ValidationError{Field: "id", Message: "recipe id is required"}
	}

	detail, err := s.provider.GetRecipeInformation(ctx, recipe.ID)
	if err != nil {
		err = classifyProviderError(err)
		s.metrics.RecordSave("provider_error")
		log.Printf("[saved] lookup of recipe %d failed: %v", recipe.ID, err)
		return nil, err
	}
	detail.ID = recipe.ID

	link := &model.SavedRecipe{
		ID:        s.newID(),
		CreatedAt: s.now().UTC(),
		UserID:    sess.UserID,
		RecipeID:  recipe.ID,
	}

	if err := s.store.Insert(ctx, link, detail.DisplayRow()); err != nil {
		s.metrics.RecordSave("persistence_error")
		log.Printf("[saved] insert for user %s recipe %d failed: %v", sess.UserID, recipe.ID, err)
		return nil, &PersistenceError{Op: "save recipe", Err: err}
	}

	s.metrics.RecordSave("ok")
	return link, nil
}

// ListSaved returns the user's saved recipes with their display data, newest first.
func (s *SavedRecipeService) ListSaved(ctx context.Context, sess *types.Session) ([]model.SavedRecipe, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}

	links, err := s.store.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, &PersistenceError{Op: "list saved recipes", Err: err}
	}
	return links, nil
}

// RemoveSaved deletes one of the user's links by its id.
func (s *SavedRecipeService) RemoveSaved(ctx context.Context, sess *types.Session, id uuid.UUID) error {
	if sess == nil {
		return ErrNotAuthenticated
	}

	removed, err := s.store.Delete(ctx, sess.UserID, id)
	if err != nil {
		return &PersistenceError{Op: "remove saved recipe", Err: err}
	}
	if !removed {
		return ErrSavedRecipeNotFound
	}
	return nil
}
