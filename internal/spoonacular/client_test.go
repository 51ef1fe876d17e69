// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meal-engine/internal/httputil"
	"github.com/pdiddy/meal-engine/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

const sampleSearch = `{
  "results": [
    {
      "id": 715415,
      "title": "Red Lentil Soup with Chicken and Turnips",
      "image": "https://img.spoonacular.com/recipes/715415-312x231.jpg",
      "sourceUrl": "https://example.com/red-lentil-soup",
      "readyInMinutes": 55,
      "servings": 8,
      "diets": ["gluten free", "dairy free"],
      "dishTypes": ["lunch", "soup", "main course"],
      "nutrition": {
        "nutrients": [
          {"name": "Calories", "amount": 477.14, "unit": "kcal"},
          {"name": "Fat", "amount": 20.38, "unit": "g"},
          {"name": "Carbohydrates", "amount": 43.66, "unit": "g"},
          {"name": "Protein", "amount": 27.2, "unit": "g"},
          {"name": "Fiber", "amount": 9.84, "unit": "g"}
        ]
      },
      "extendedIngredients": [
        {"name": "red lentils", "amount": 1.5, "unit": "cups"},
        {"name": "chicken breast", "amount": 2, "unit": ""}
      ]
    },
    {
      "id": 716406,
      "title": "Asparagus and Pea Soup",
      "readyInMinutes": 20,
      "servings": 2,
      "diets": ["vegan"],
      "dishTypes": ["soup"],
      "nutrition": {"nutrients": [{"name": "Calories", "amount": 216.8, "unit": "kcal"}]}
    }
  ],
  "offset": 0,
  "number": 2,
  "totalResults": 2
}`

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	c, err := NewClient(types.CollectConfig{
		APIKey:        "test-key",
		BaseURL:       ts.URL,
		CacheDir:      filepath.Join(t.TempDir(), "cache"),
		MaxDailyCalls: 3,
		BatchSize:     2,
	}, nil)
	require.NoError(t, err)
	return c, &calls
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(types.CollectConfig{APIKey: "  "}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestFetchSendsSearchParameters(t *testing.T) {
	var got http.Header
	var query map[string][]string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		got = r.Header
		query = r.URL.Query()
		w.Write([]byte(sampleSearch))
	})

	page, cached, err := c.Fetch(context.Background(), "gluten free", "main course", 4)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, page.Recipes, 2)

	assert.Equal(t, defaultUserAgent, got.Get("User-Agent"))
	assert.Equal(t, []string{"test-key"}, query["apiKey"])
	assert.Equal(t, []string{"true"}, query["addRecipeNutrition"])
	assert.Equal(t, []string{"true"}, query["fillIngredients"])
	assert.Equal(t, []string{"2"}, query["number"])
	assert.Equal(t, []string{"4"}, query["offset"])
	assert.Equal(t, []string{"gluten free"}, query["diet"])
	assert.Equal(t, []string{"main course"}, query["type"])
}

func TestFetchOmitsEmptyFilters(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.NotContains(t, q, "diet")
		assert.NotContains(t, q, "type")
		w.Write([]byte(`{"results": []}`))
	})
	page, _, err := c.Fetch(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.Empty(t, page.Recipes)
}

func TestFetchCachesResponses(t *testing.T) {
	c, calls := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleSearch))
	})
	ctx := context.Background()

	_, cached, err := c.Fetch(ctx, "vegan", "soup", 0)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.FileExists(t, c.cache.Path("vegan", "soup", 0))

	page, cached, err := c.Fetch(ctx, "vegan", "soup", 0)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Len(t, page.Recipes, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, 1, c.Quota().Used())
}

func TestFetchReplacesCorruptCache(t *testing.T) {
	c, calls := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleSearch))
	})
	path := c.cache.Path("vegan", "soup", 0)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	page, cached, err := c.Fetch(context.Background(), "vegan", "soup", 0)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, page.Recipes, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestFetchStopsAtLocalQuota(t *testing.T) {
	c, calls := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})
	ctx := context.Background()
	for offset := 0; offset < 3; offset++ {
		_, _, err := c.Fetch(ctx, "vegan", "", offset)
		require.NoError(t, err)
	}
	_, _, err := c.Fetch(ctx, "vegan", "", 3)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestFetchPaymentRequiredExhaustsQuota(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})
	_, _, err := c.Fetch(context.Background(), "vegan", "", 0)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 0, c.Quota().Remaining())
}

func TestFetchHTTPError(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, _, err := c.Fetch(context.Background(), "vegan", "", 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestFetchNormalisesRecipes(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleSearch))
	})
	page, _, err := c.Fetch(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Len(t, page.Recipes, 2)

	r := page.Recipes[0]
	assert.Equal(t, int64(715415), r.ID)
	assert.Equal(t, "Red Lentil Soup with Chicken and Turnips", r.Name)
	assert.Equal(t, 477.0, r.Calories)
	assert.Equal(t, 27.2, r.Protein)
	assert.Equal(t, 43.7, r.Carbs)
	assert.Equal(t, 20.4, r.Fat)
	assert.Equal(t, 9.8, r.Fiber)
	assert.Equal(t, "gluten free,dairy free", r.Category)
	assert.Equal(t, types.MealType("soup"), r.MealType)
	assert.Equal(t, types.StatusCooked, r.CookingStatus)
	assert.Equal(t, "high_protein,high_fiber", r.DietTags)
	assert.Equal(t, "red lentils,chicken breast", r.Ingredients)
	assert.Equal(t, []types.Ingredient{
		{Name: "red lentils", Amount: 1.5, Unit: "cups"},
		{Name: "chicken breast", Amount: 2},
	}, r.IngredientList)
}

func TestFetchPacesAPICalls(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer ts.Close()

	c, err := NewClient(types.CollectConfig{
		APIKey:   "test-key",
		BaseURL:  ts.URL,
		CacheDir: t.TempDir(),
		Delay:    50 * time.Millisecond,
	}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	start := time.Now()
	for offset := 0; offset < 3; offset++ {
		_, _, err := c.Fetch(ctx, "vegan", "", offset)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)

	// Cached pages are not paced.
	start = time.Now()
	_, cached, err := c.Fetch(ctx, "vegan", "", 0)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
