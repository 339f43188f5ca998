package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// SearchResult pairs the provider record, which the client posts back to save
// it, with its display card.
type SearchResult struct {
	Recipe model.RecipeDetail `json:"recipe"`
	Card   model.RecipeCard   `json:"card"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

type SearchHandler struct {
	searchService service.ISearchService
}

func NewSearchHandler(searchService service.ISearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/search", h.Search)
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	criteria, err := service.BuildCriteria(req.Ingredients, req.Exclude, types.Diet(req.Diet))
	if err != nil {
		c.Error(err)
		return
	}

	recipes, err := h.searchService.Search(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	resp := SearchResponse{Results: make([]SearchResult, 0, len(recipes)), Count: len(recipes)}
	for _, r := range recipes {
		resp.Results = append(resp.Results, SearchResult{Recipe: r, Card: r.Card()})
	}
	c.JSON(http.StatusOK, resp)
}
