package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler turns the last error a handler attached with c.Error into a JSON
// error response. Handlers that already wrote a response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		status, message := StatusFor(ginErr)
		if status >= http.StatusInternalServerError {
			log.Printf("[error] %s %s: %v", c.Request.Method, c.Request.URL.Path, ginErr.Err)
		}
		c.JSON(status, ErrorResponse{Error: message})
	}
}

// StatusFor maps an error to its HTTP status and the message shown to the user.
func StatusFor(ginErr *gin.Error) (int, string) {
	err := ginErr.Err

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case ginErr.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, err.Error()
	case service.IsProviderError(err), service.IsNetworkError(err):
		return http.StatusBadGateway, "The recipe service is unavailable. Please try again."
	case errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Please sign in to save recipes."
	case errors.Is(err, service.ErrSessionExpired):
		return http.StatusUnauthorized, "Your session has expired. Please sign in again."
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "An account with this email already exists."
	case errors.Is(err, service.ErrSavedRecipeNotFound):
		return http.StatusNotFound, "Saved recipe not found."
	case service.IsPersistenceError(err):
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
