package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/provider"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// DefaultResultLimit is how many recipes one search asks the provider for.
const DefaultResultLimit = 9

// SearchService runs an ingredient search and enriches every hit with its details.
type SearchService struct {
	provider RecipeProvider
	limit    int
	metrics  metrics.Recorder
}

// NewSearchService creates a SearchService. A limit below 1 uses DefaultResultLimit.
func NewSearchService(p RecipeProvider, limit int, recorder metrics.Recorder) *SearchService {
	if limit < 1 {
		limit = DefaultResultLimit
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &SearchService{
		provider: p,
		limit:    limit,
		metrics:  recorder,
	}
}

// Search issues one search request, then one detail request per summary, all
// in flight at once. A failed search fails the call; a failed detail only drops
// that recipe. Results keep the provider's order. An empty, non-nil slice is a
// valid answer.
func (s *SearchService) Search(ctx context.Context, criteria types.SearchCriteria) ([]model.RecipeDetail, error) {
	if len(criteria.IncludeIngredients) == 0 {
		return nil, ErrEmptyIngredients
	}

	summaries, err := s.provider.SearchRecipes(ctx, criteria, s.limit)
	if err != nil {
		err = classifyProviderError(err)
		s.metrics.RecordSearch(searchOutcome(err))
		log.Printf("[search] provider search failed: %v", err)
		return nil, err
	}

	// Each goroutine owns exactly one slot; the slice is only read after Wait.
	slots := make([]*model.RecipeDetail, len(summaries))
	var g errgroup.Group
	for i, summary := range summaries {
		id := summary.ID
		g.Go(func() error {
			detail, err := s.provider.GetRecipeInformation(ctx, id)
			if err != nil {
				log.Printf("[search] dropping recipe %d: %v", id, err)
				s.metrics.RecordDetailFetch(false)
				return nil
			}
			s.metrics.RecordDetailFetch(true)
			slots[i] = &detail
			return nil
		})
	}
	g.Wait()

	results := make([]model.RecipeDetail, 0, len(slots))
	for _, detail := range slots {
		if detail != nil {
			results = append(results, *detail)
		}
	}

	s.metrics.RecordSearch("ok")
	log.Printf("[search] %d summaries, %d details", len(summaries), len(results))
	return results, nil
}

// classifyProviderError sorts a provider client failure into ProviderError or NetworkError.
func classifyProviderError(err error) error {
	var statusErr *provider.StatusError
	switch {
	case errors.As(err, &statusErr):
		return &ProviderError{StatusCode: statusErr.StatusCode, Err: err}
	case errors.Is(err, provider.ErrMalformedResponse):
		return &ProviderError{Err: err}
	default:
		return &NetworkError{Err: err}
	}
}

func searchOutcome(err error) string {
	if IsProviderError(err) {
		return "provider_error"
	}
	return "network_error"
}
