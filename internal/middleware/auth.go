package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/types"
)

// SessionKey is the gin context key holding the request's *types.Session.
const SessionKey = "session"

// TokenValidator resolves a bearer token to its session.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*types.Session, error)
}

// Session resolves the bearer token, when there is one, and stores the session
// in the gin context. A missing, invalid or revoked token leaves the request
// without a session; the handler decides whether that is an error.
func Session(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		sess, err := validator.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			if service.IsPersistenceError(err) {
				c.Error(err)
				c.Abort()
				return
			}
			log.Printf("[auth] ignoring token: %v", err)
			c.Next()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireSession rejects requests that Session could not attach a session to.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			c.Error(service.ErrNotAuthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the request's session, or nil if there is none.
func GetSession(c *gin.Context) *types.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*types.Session)
	return sess
}
