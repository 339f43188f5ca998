package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/model"
	"github.com/pageza/pantrychef/backend/internal/service"
)

type SavedRecipeHandler struct {
	savedService service.ISavedRecipeService
}

func NewSavedRecipeHandler(savedService service.ISavedRecipeService) *SavedRecipeHandler {
	return &SavedRecipeHandler{savedService: savedService}
}

// RegisterRoutes mounts the saved recipe routes. They do not require a session
// up front; the service reports ErrNotAuthenticated itself.
func (h *SavedRecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	saved := router.Group("/saved-recipes")
	{
		saved.POST("", h.Save)
		saved.GET("", h.List)
		saved.DELETE("/:id", h.Remove)
	}
}

func (h *SavedRecipeHandler) Save(c *gin.Context) {
	var recipe model.RecipeDetail
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}
	if recipe.ID <= 0 {
		c.Error(&service.ValidationError{Field: "id", Message: "recipe id is required"})
		return
	}

	link, err := h.savedService.Save(c.Request.Context(), middleware.GetSession(c), recipe)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *SavedRecipeHandler) List(c *gin.Context) {
	links, err := h.savedService.ListSaved(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_recipes": links})
}

func (h *SavedRecipeHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(&service.ValidationError{Field: "id", Message: "invalid saved recipe id"})
		return
	}

	if err := h.savedService.RemoveSaved(c.Request.Context(), middleware.GetSession(c), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
