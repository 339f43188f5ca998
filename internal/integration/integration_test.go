package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/api"
	"github.com/pageza/pantrychef/backend/internal/provider"
	"github.com/pageza/pantrychef/backend/internal/repository"
	"github.com/pageza/pantrychef/backend/internal/server"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/testhelpers"
	"github.com/pageza/pantrychef/backend/internal/types"
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	rdb, _ := testhelpers.SetupRedis(t)

	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/complexSearch":
			w.Write([]byte(`{"results":[{"id":654959},{"id":715538}]}`))
		case "/recipes/654959/information":
			w.Write([]byte(`{"id":654959,"title":"Pasta With Tuna","dishTypes":["lunch","main course"],"extendedIngredients":[{"original":"1 can tuna"}]}`))
		default:
			w.WriteHeader(http.StatusPaymentRequired)
		}
	}))
	t.Cleanup(fake.Close)

	cfg := &config.Config{ServerHost: "localhost", ServerPort: "0", JWTSecret: "integration-secret", SessionTTL: time.Hour}
	client := provider.NewClient(nil, fake.URL, "key", nil)
	srv := server.New(cfg, server.Deps{
		DB:    db,
		Redis: rdb,
		Services: api.Services{
			Auth:   service.NewAuthService(repository.NewUserStore(db), repository.NewSessionStore(rdb), cfg.JWTSecret, cfg.SessionTTL),
			Search: service.NewSearchService(client, 9, nil),
			Saved:  service.NewSavedRecipeService(repository.NewSavedRecipeStore(db), client, nil),
		},
	})
	return srv.Handler()
}

func call(t *testing.T, h http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSaveFlowOnPostgres(t *testing.T) {
	h := setupServer(t)

	w := call(t, h, http.MethodPost, "/api/v1/auth/register", types.RegisterRequest{Email: "pg@example.com", Password: "password123"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var auth types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))

	w = call(t, h, http.MethodGet, "/api/v1/recipes/search?ingredients=tuna,pasta", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var search api.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &search))
	require.Equal(t, 1, search.Count)
	assert.Equal(t, []string{"1 can tuna"}, search.Results[0].Card.Ingredients)

	for i := 0; i < 2; i++ {
		w = call(t, h, http.MethodPost, "/api/v1/saved-recipes", search.Results[0].Recipe, auth.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = call(t, h, http.MethodGet, "/api/v1/saved-recipes", nil, auth.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		SavedRecipes []struct {
			Recipe struct {
				Title     string   `json:"title"`
				DishTypes []string `json:"dish_types"`
			} `json:"recipe"`
		} `json:"saved_recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.SavedRecipes, 2)
	assert.Equal(t, "Pasta With Tuna", list.SavedRecipes[0].Recipe.Title)
	assert.Equal(t, []string{"lunch", "main course"}, list.SavedRecipes[0].Recipe.DishTypes)
}
