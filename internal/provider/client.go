// Package provider is the client for the Spoonacular-compatible recipe API.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/types"
)

const (
	searchPath = "/recipes/complexSearch"
	detailPath = "/recipes/%d/information"

	// sortFewestMissing asks the provider to rank recipes by how few ingredients
	// are missing relative to includeIngredients.
	sortFewestMissing = "min-missing-ingredients"

	maxBodyBytes = 4 << 20
)

// ErrMalformedResponse is returned when the provider answers 2xx with a body that cannot be used.
var ErrMalformedResponse = errors.New("malformed provider response")

// StatusError is returned when the provider answers with a non-success status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recipe provider %s returned status %d", e.Endpoint, e.StatusCode)
}

// RecipeSummary is one entry of the search endpoint's results array.
type RecipeSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
}

type searchResponse struct {
	Results      []RecipeSummary `json:"results"`
	TotalResults int             `json:"totalResults"`
}

// Client calls the recipe provider's search and detail endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	summaries  *SummarySanitizer
	metrics    metrics.Recorder
}

// NewClient creates a provider client. baseURL has no trailing slash, e.g. https://api.spoonacular.com.
func NewClient(httpClient *http.Client, baseURL, apiKey string, recorder metrics.Recorder) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		summaries:  NewSummarySanitizer(),
		metrics:    recorder,
	}
}

// SearchQuery encodes criteria as the search endpoint's query parameters.
func (c *Client) SearchQuery(criteria types.SearchCriteria, number int) url.Values {
	q := url.Values{}
	q.Set("includeIngredients", strings.Join(criteria.IncludeIngredients, ","))
	q.Set("number", strconv.Itoa(number))
	q.Set("apiKey", c.apiKey)
	q.Set("addRecipeInformation", "true")
	q.Set("addRecipeInstructions", "true")
	q.Set("addRecipeNutrition", "true")
	q.Set("sort", sortFewestMissing)
	if len(criteria.ExcludeIngredients) > 0 {
		q.Set("excludeIngredients", strings.Join(criteria.ExcludeIngredients, ","))
	}
	if criteria.Diet != types.DietNone {
		q.Set("diet", string(criteria.Diet))
	}
	return q
}

// SearchRecipes returns up to number summaries matching criteria, in provider order.
func (c *Client) SearchRecipes(ctx context.Context, criteria types.SearchCriteria, number int) ([]RecipeSummary, error) {
	var resp searchResponse
	if err := c.get(ctx, "search", searchPath, c.SearchQuery(criteria, number), &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", ErrMalformedResponse)
	}
	return resp.Results, nil
}

// GetRecipeInformation fetches the full record for one recipe id.
func (c *Client) GetRecipeInformation(ctx context.Context, id int64) (model.RecipeDetail, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)

	var detail model.RecipeDetail
	if err := c.get(ctx, "detail", fmt.Sprintf(detailPath, id), q, &detail); err != nil {
		return model.RecipeDetail{}, err
	}
	if detail.ID == 0 {
		return model.RecipeDetail{}, fmt.Errorf("%w: recipe %d has no id", ErrMalformedResponse, id)
	}
	if detail.Summary != nil {
		text := c.summaries.PlainText(*detail.Summary)
		detail.Summary = &text
	}
	return model.NewRecipeDetail(detail), nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, out interface{}) error {
	start := time.Now()
	defer func() {
		c.metrics.RecordProviderLatency(endpoint, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("recipe provider %s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordProviderStatus(endpoint, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, endpoint, err)
	}
	return nil
}
