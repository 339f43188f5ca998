package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/mocks"
	"github.com/pageza/pantrychef/backend/internal/types"
)

const goodToken = "good-token"

type testServices struct {
	auth   *mocks.MockAuthService
	search *mocks.MockSearchService
	saved  *mocks.MockSavedRecipeService
	sess   *types.Session
}

// setupTestRouter mounts the API on mocked services. goodToken resolves to sess.
func setupTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServices{
		auth:   new(mocks.MockAuthService),
		search: new(mocks.MockSearchService),
		saved:  new(mocks.MockSavedRecipeService),
		sess:   &types.Session{UserID: uuid.New(), Email: "cook@example.com", TokenID: uuid.NewString()},
	}
	ts.auth.On("ValidateToken", mock.Anything, goodToken).Return(ts.sess, nil).Maybe()

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	SetupAPI(router, Services{Auth: ts.auth, Search: ts.search, Saved: ts.saved})
	return router, ts
}

func performRequest(router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
