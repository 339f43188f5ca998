package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/provider"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// MockRecipeProvider is a mock implementation of the recipe provider
type MockRecipeProvider struct {
	mock.Mock
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeProvider) SearchRecipes(ctx context.Context, criteria types.SearchCriteria, number int) ([]provider.RecipeSummary, error) {
	args := m.Called(ctx, criteria, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.RecipeSummary), args.Error(1)
}

// GetRecipeInformation mocks the GetRecipeInformation method
func (m *MockRecipeProvider) GetRecipeInformation(ctx context.Context, id int64) (model.RecipeDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.RecipeDetail), args.Error(1)
}

// MockSearchService is a mock implementation of the search service
type MockSearchService struct {
	mock.Mock
}

// Search mocks the Search method
func (m *MockSearchService) Search(ctx context.Context, criteria types.SearchCriteria) ([]model.RecipeDetail, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecipeDetail), args.Error(1)
}

// MockSavedRecipeService is a mock implementation of the saved recipe service
type MockSavedRecipeService struct {
	mock.Mock
}

// Save mocks the Save method
func (m *MockSavedRecipeService) Save(ctx context.Context, sess *types.Session, recipe model.RecipeDetail) (*model.SavedRecipe, error) {
	args := m.Called(ctx, sess, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedRecipe), args.Error(1)
}

// ListSaved mocks the ListSaved method
func (m *MockSavedRecipeService) ListSaved(ctx context.Context, sess *types.Session) ([]model.SavedRecipe, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedRecipe), args.Error(1)
}

// RemoveSaved mocks the RemoveSaved method
func (m *MockSavedRecipeService) RemoveSaved(ctx context.Context, sess *types.Session, id uuid.UUID) error {
	args := m.Called(ctx, sess, id)
	return args.Error(0)
}
