// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spoonacular collects recipes from the Spoonacular complexSearch
// API. Responses are cached on disk and calls are counted against a daily
// quota that persists between runs.
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/meal-engine/internal/httputil"
	"github.com/pdiddy/meal-engine/pkg/types"
)

var (
	// ErrQuotaExceeded is returned once the daily call budget is spent,
	// either locally or as reported by a 402 response.
	ErrQuotaExceeded = errors.New("daily API quota exceeded")

	// ErrMissingAPIKey is returned by NewClient when no key is configured.
	ErrMissingAPIKey = errors.New("spoonacular API key not set")
)

// APIBase is the default Spoonacular API root.
var APIBase = "https://api.spoonacular.com"

const (
	searchPath           = "/recipes/complexSearch"
	defaultMaxDailyCalls = 150
	defaultBatchSize     = 100
	defaultCacheDir      = "cache"
	defaultTimeout       = 30 * time.Second
	defaultUserAgent     = "meal-engine/1.0"
	quotaFile            = "quota.json"
)

// Page is one page of search results.
type Page struct {
	Recipes      []types.Recipe
	Offset       int
	TotalResults int
}

// Client fetches search pages, serving them from the cache when possible.
type Client struct {
	cfg     types.CollectConfig
	http    *http.Client
	cache   *Cache
	quota   *Quota
	limiter *rate.Limiter // nil when cfg.Delay is zero
	log     *zap.Logger
}

// NewClient applies defaults to cfg and loads the quota file from the
// cache directory.
func NewClient(cfg types.CollectConfig, log *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = APIBase
	}
	if cfg.MaxDailyCalls <= 0 {
		cfg.MaxDailyCalls = defaultMaxDailyCalls
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if log == nil {
		log = zap.NewNop()
	}

	quota, err := LoadQuota(filepath.Join(cfg.CacheDir, quotaFile), cfg.MaxDailyCalls)
	if err != nil {
		return nil, err
	}
	c := &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: NewCache(cfg.CacheDir),
		quota: quota,
		log:   log,
	}
	if cfg.Delay > 0 {
		c.limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}
	return c, nil
}

// Quota returns the client's daily call counter.
func (c *Client) Quota() *Quota { return c.quota }

// BatchSize returns the number of recipes requested per call.
func (c *Client) BatchSize() int { return c.cfg.BatchSize }

// Fetch returns one page of recipes for diet and mealType starting at
// offset. Either filter may be empty. The second result reports whether the
// page came from the cache, in which case no quota was used and no pacing
// delay applied. Requests that reach the API are spaced at least cfg.Delay
// apart.
func (c *Client) Fetch(ctx context.Context, diet, mealType string, offset int) (Page, bool, error) {
	body, ok, err := c.cache.Load(diet, mealType, offset)
	if err != nil {
		return Page{}, false, err
	}
	if ok {
		page, err := decodePage(body)
		if err == nil {
			c.log.Debug("cache hit", zap.String("diet", diet), zap.String("meal_type", mealType), zap.Int("offset", offset))
			return page, true, nil
		}
		c.log.Warn("discarding unreadable cache entry", zap.String("path", c.cache.Path(diet, mealType, offset)), zap.Error(err))
	}

	if err := c.quota.Use(); err != nil {
		return Page{}, false, err
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Page{}, false, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(diet, mealType, offset), nil)
	if err != nil {
		return Page{}, false, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0, c.log)
	if err != nil {
		return Page{}, false, fmt.Errorf("spoonacular request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		if err := c.quota.Exhaust(); err != nil {
			c.log.Warn("saving quota", zap.Error(err))
		}
		return Page{}, false, ErrQuotaExceeded
	case resp.StatusCode != http.StatusOK:
		return Page{}, false, fmt.Errorf("spoonacular returned HTTP %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, false, fmt.Errorf("reading spoonacular response: %w", err)
	}
	page, err := decodePage(body)
	if err != nil {
		return Page{}, false, err
	}
	if err := c.cache.Save(diet, mealType, offset, body); err != nil {
		c.log.Warn("caching response", zap.Error(err))
	}
	return page, false, nil
}

func (c *Client) searchURL(diet, mealType string, offset int) string {
	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("addRecipeNutrition", "true")
	q.Set("fillIngredients", "true")
	q.Set("instructionsRequired", "true")
	q.Set("number", strconv.Itoa(c.cfg.BatchSize))
	q.Set("offset", strconv.Itoa(offset))
	if diet != "" {
		q.Set("diet", diet)
	}
	if mealType != "" {
		q.Set("type", mealType)
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + searchPath + "?" + q.Encode()
}

func decodePage(body []byte) (Page, error) {
	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return Page{}, fmt.Errorf("parsing spoonacular response: %w", err)
	}
	page := Page{Offset: sr.Offset, TotalResults: sr.TotalResults}
	for _, ar := range sr.Results {
		page.Recipes = append(page.Recipes, toRecipe(ar))
	}
	return page, nil
}
