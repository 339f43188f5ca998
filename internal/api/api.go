package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/service"
)

// Services are the dependencies the HTTP handlers call into.
type Services struct {
	Auth   service.IAuthService
	Search service.ISearchService
	Saved  service.ISavedRecipeService
}

// SetupAPI mounts the versioned API on router. Every route sees the caller's
// session, if any, through middleware.Session.
func SetupAPI(router *gin.Engine, svc Services) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session(svc.Auth))
	{
		NewAuthHandler(svc.Auth).RegisterRoutes(v1)
		NewSearchHandler(svc.Search).RegisterRoutes(v1)
		NewSavedRecipeHandler(svc.Saved).RegisterRoutes(v1)
	}
}
