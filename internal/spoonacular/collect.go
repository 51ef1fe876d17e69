// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spoonacular

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// Fetcher returns one page of search results. *Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, diet, mealType string, offset int) (Page, bool, error)
	BatchSize() int
}

// Saver persists collected recipes. *recipedb.Store implements it.
type Saver interface {
	Upsert(ctx context.Context, recipes ...types.Recipe) error
}

// Options controls a collection run.
type Options struct {
	// Target is the number of new recipes to collect per diet (default 200).
	Target int

	// Diets and MealTypes default to the package lists when empty.
	Diets     []string
	MealTypes []string
}

const defaultTarget = 200

// Summary reports the outcome of a collection run.
type Summary struct {
	PerDiet      map[string]int
	Collected    int
	APICalls     int
	CacheHits    int
	QuotaReached bool
}

// Collector pages through search results for every diet and meal type,
// saving recipes it has not seen in this run.
type Collector struct {
	fetch Fetcher
	save  Saver
	log   *zap.Logger
}

// NewCollector returns a collector reading from f and writing to s.
func NewCollector(f Fetcher, s Saver, log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{fetch: f, save: s, log: log}
}

// Collect runs until every diet reaches opts.Target, the results run out,
// or the daily quota is spent. Reaching the quota is not an error; it is
// reported in Summary.QuotaReached so the run can resume tomorrow from the
// cache.
func (c *Collector) Collect(ctx context.Context, opts Options) (Summary, error) {
	if opts.Target <= 0 {
		opts.Target = defaultTarget
	}
	if len(opts.Diets) == 0 {
		opts.Diets = Diets
	}
	if len(opts.MealTypes) == 0 {
		opts.MealTypes = MealTypes
	}
	batch := c.fetch.BatchSize()
	if batch <= 0 {
		batch = defaultBatchSize
	}

	sum := Summary{PerDiet: make(map[string]int, len(opts.Diets))}
	seen := make(map[int64]bool)

	for _, diet := range opts.Diets {
		for _, mealType := range opts.MealTypes {
			for offset := 0; sum.PerDiet[diet] < opts.Target; offset += batch {
				if err := ctx.Err(); err != nil {
					return sum, err
				}

				page, cached, err := c.fetch.Fetch(ctx, diet, mealType, offset)
				if errors.Is(err, ErrQuotaExceeded) {
					c.log.Info("daily quota reached, stopping collection",
						zap.Int("collected", sum.Collected),
						zap.Int("api_calls", sum.APICalls),
					)
					sum.QuotaReached = true
					return sum, nil
				}
				if err != nil {
					return sum, fmt.Errorf("fetching %s %s at offset %d: %w", diet, mealType, offset, err)
				}
				if cached {
					sum.CacheHits++
				} else {
					sum.APICalls++
				}

				fresh := make([]types.Recipe, 0, len(page.Recipes))
				for _, r := range page.Recipes {
					if seen[r.ID] || sum.PerDiet[diet]+len(fresh) >= opts.Target {
						continue
					}
					seen[r.ID] = true
					fresh = append(fresh, r)
				}
				if len(fresh) > 0 {
					if err := c.save.Upsert(ctx, fresh...); err != nil {
						return sum, fmt.Errorf("saving recipes: %w", err)
					}
				}
				sum.PerDiet[diet] += len(fresh)
				sum.Collected += len(fresh)

				c.log.Debug("fetched page",
					zap.String("diet", diet),
					zap.String("meal_type", mealType),
					zap.Int("offset", offset),
					zap.Int("results", len(page.Recipes)),
					zap.Int("new", len(fresh)),
					zap.Bool("cached", cached),
				)

				if len(page.Recipes) < batch {
					break
				}
			}
		}
		c.log.Info("diet complete", zap.String("diet", diet), zap.Int("recipes", sum.PerDiet[diet]))
	}
	return sum, nil
}

// Estimate is the projected API usage of a collection run.
type Estimate struct {
	MinRecipes, MaxRecipes int
	MinCalls, MaxCalls     int
	MinDays, MaxDays       int
}

// EstimateUsage projects the calls and days needed to collect between
// targetMin and targetMax recipes for each of diets. Call counts assume
// full batches and add half again for short pages.
func EstimateUsage(diets, targetMin, targetMax, batchSize, maxDailyCalls int) Estimate {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxDailyCalls <= 0 {
		maxDailyCalls = defaultMaxDailyCalls
	}
	e := Estimate{MinRecipes: diets * targetMin, MaxRecipes: diets * targetMax}
	e.MinCalls = ceilDiv(e.MinRecipes, batchSize) * 3 / 2
	e.MaxCalls = ceilDiv(e.MaxRecipes, batchSize) * 3 / 2
	e.MinDays = ceilDiv(e.MinCalls, maxDailyCalls)
	e.MaxDays = ceilDiv(e.MaxCalls, maxDailyCalls)
	return e
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
