package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/provider"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// RecipeProvider is the external recipe API.
type RecipeProvider interface {
	SearchRecipes(ctx context.Context, criteria types.SearchCriteria, number int) ([]provider.RecipeSummary, error)
	GetRecipeInformation(ctx context.Context, id int64) (model.RecipeDetail, error)
}

// SavedRecipeStore persists saved recipe links in the data backend.
type SavedRecipeStore interface {
	// Insert writes one link row. display is upserted into the recipes table
	// in the same transaction so the saved list can show it.
	Insert(ctx context.Context, link *model.SavedRecipe, display model.Recipe) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SavedRecipe, error)
	// Delete removes the link with id owned by userID and reports whether a row was removed.
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// UserStore reads and writes accounts.
type UserStore interface {
	// Create returns ErrEmailTaken when the email already has an account.
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// SessionStore keeps the server-side record of issued sessions.
type SessionStore interface {
	Put(ctx context.Context, session types.Session, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}

// ISearchService is the recipe search entry point used by the API layer.
type ISearchService interface {
	Search(ctx context.Context, criteria types.SearchCriteria) ([]model.RecipeDetail, error)
}

// ISavedRecipeService manages a user's saved recipes.
type ISavedRecipeService interface {
	Save(ctx context.Context, sess *types.Session, recipe model.RecipeDetail) (*model.SavedRecipe, error)
	ListSaved(ctx context.Context, sess *types.Session) ([]model.SavedRecipe, error)
	RemoveSaved(ctx context.Context, sess *types.Session, id uuid.UUID) error
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (string, *types.Session, error)
	Login(ctx context.Context, email, password string) (string, *types.Session, error)
	Logout(ctx context.Context, sess *types.Session) error
	ValidateToken(ctx context.Context, token string) (*types.Session, error)
}
