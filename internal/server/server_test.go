package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/pantrymap/internal/artifact"
	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/database"
	"github.com/ppiankov/pantrymap/internal/model"
	"github.com/ppiankov/pantrymap/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	fat := 3.5
	idx := NewArtifactIndex(
		map[string]category.ID{"olive oil": category.Oil, "tofu": category.Legume},
		map[string]model.Metadata{"tofu": {Category: uint8(category.Legume), Vegan: true, Fat: &fat}},
	)
	return SetupRouter("", NewHandler(idx, classify.New(), "test"))
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := do(t, setupTestRouter(t), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.EqualValues(t, 2, body["entries"])
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	setupTestRouter(t).ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestListCategories(t *testing.T) {
	w := do(t, setupTestRouter(t), http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []categoryEntry `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Categories, category.Count)
	assert.Equal(t, categoryEntry{Ordinal: 0, Name: "produce"}, body.Categories[0])
	assert.Equal(t, 1, body.Categories[category.Oil].Entries)
	assert.Equal(t, 1, body.Categories[category.Legume].Entries)
	assert.True(t, body.Categories[category.Unknown].Reserved)
	assert.Equal(t, "pantry", body.Categories[23].Name)
}

func TestGetIngredient(t *testing.T) {
	router := setupTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/ingredients/Olive%20Oil", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ing model.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ing))
	assert.Equal(t, model.Ingredient{Name: "olive oil", Ordinal: 13, Category: "oil"}, ing)

	w = do(t, router, http.MethodGet, "/api/v1/ingredients/tofu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ing))
	require.NotNil(t, ing.Meta)
	assert.True(t, ing.Meta.Vegan)

	w = do(t, router, http.MethodGet, "/api/v1/ingredients/blorptang", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClassify(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name     string
		req      ClassifyRequest
		kind     string
		category string
	}{
		{"by name", ClassifyRequest{Name: "Extra Virgin Olive Oil"}, "classified", "oil"},
		{"by primary", ClassifyRequest{Name: "blorptang original", Primary: "en:Sauces"}, "classified", "condiment"},
		{"filtered", ClassifyRequest{Name: "frozen pizza"}, "filtered", ""},
		{"unclassified", ClassifyRequest{Name: "blorptang original"}, "unclassified", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/classify", tt.req)
			require.Equal(t, http.StatusOK, w.Code)

			var resp ClassifyResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Equal(t, tt.category, resp.Category)
			if tt.category == "" {
				assert.Nil(t, resp.Ordinal)
			}
		})
	}
}

func TestClassify_Metadata(t *testing.T) {
	w := do(t, setupTestRouter(t), http.MethodPost, "/api/v1/classify", ClassifyRequest{
		Name:      "olive oil",
		Labels:    "Vegan, Organic",
		Nutrition: map[string]string{"energy_kcal": "884", "fat": "100"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.True(t, resp.Meta.Vegan)
	require.NotNil(t, resp.Meta.Kcal)
	assert.EqualValues(t, 884, *resp.Meta.Kcal)
	assert.Nil(t, resp.Meta.Protein)
}

func TestClassify_BadRequest(t *testing.T) {
	w := do(t, setupTestRouter(t), http.MethodPost, "/api/v1/classify", map[string]string{"main_category": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadArtifactIndex(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, artifact.CategoryFile)
	_, err := artifact.WriteCategories(catPath, map[string]category.ID{"cheddar": category.Cheese})
	require.NoError(t, err)

	idx, err := LoadArtifactIndex(catPath, filepath.Join(dir, artifact.MetaFile))
	require.NoError(t, err, "a missing meta artifact is optional")

	ing, err := idx.Get(context.Background(), "cheddar")
	require.NoError(t, err)
	assert.Equal(t, "cheese", ing.Category)
	assert.Nil(t, ing.Meta)

	_, err = LoadArtifactIndex(filepath.Join(dir, "missing.gz"), "")
	assert.ErrorIs(t, err, artifact.ErrNotFound)
}

func TestStoreBackedLookup(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	st := store.NewIngredientStore(db)
	require.NoError(t, st.Replace(context.Background(), store.Snapshot{
		Categories: map[string]category.ID{"cheddar": category.Cheese},
		Report:     &model.Report{RunID: "r1", StartedAt: time.Now(), FinishedAt: time.Now()},
	}))

	router := SetupRouter("", NewHandler(st, classify.New(), "test"))
	w := do(t, router, http.MethodGet, "/api/v1/ingredients/cheddar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"cheese"`)

	w = do(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"run_id":"r1"`)
	assert.Contains(t, w.Body.String(), `"entries":1`)
}

func TestServe_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr, setupTestRouter(t)) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
