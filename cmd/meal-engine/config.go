// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/meal-engine/internal/recipedb"
	"github.com/pdiddy/meal-engine/pkg/types"
)

const (
	defaultDBPath   = "meal_recipes.db"
	defaultCacheDir = "cache"
)

func setDefaults() {
	viper.SetDefault("db", defaultDBPath)
	viper.SetDefault("cache_dir", defaultCacheDir)
	viper.SetDefault("store.max_results", 200)
	viper.SetDefault("spoonacular.max_daily_calls", 150)
	viper.SetDefault("spoonacular.batch_size", 100)
	viper.SetDefault("spoonacular.delay", time.Second)
	viper.SetDefault("spoonacular.timeout", 30*time.Second)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("planner.candidate_limit", 200)
	viper.SetDefault("planner.seed", 0)
}

// loadConfig assembles the stage configurations from flags, environment,
// and the config file, in viper's precedence order.
func loadConfig() types.Config {
	return types.Config{
		Store: types.StoreConfig{
			Path:       viper.GetString("db"),
			MaxResults: viper.GetInt("store.max_results"),
		},
		Collect: types.CollectConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("spoonacular.timeout"),
				UserAgent: viper.GetString("spoonacular.user_agent"),
			},
			APIKey:        viper.GetString("spoonacular.api_key"),
			BaseURL:       viper.GetString("spoonacular.base_url"),
			CacheDir:      viper.GetString("cache_dir"),
			MaxDailyCalls: viper.GetInt("spoonacular.max_daily_calls"),
			BatchSize:     viper.GetInt("spoonacular.batch_size"),
			Delay:         viper.GetDuration("spoonacular.delay"),
		},
		Planner: types.PlannerConfig{
			CandidateLimit: viper.GetInt("planner.candidate_limit"),
			Seed:           viper.GetInt64("planner.seed"),
		},
		Log: types.LogConfig{
			Level:       viper.GetString("log.level"),
			Format:      viper.GetString("log.format"),
			Development: viper.GetBool("log.development"),
		},
	}
}

func openStore() (*recipedb.Store, error) {
	return recipedb.NewStore(loadConfig().Store, logger)
}

// loadCandidates returns up to limit recipes from the store, falling back to
// the built-in samples when the store is empty.
func loadCandidates(ctx context.Context, store *recipedb.Store, q recipedb.Query) ([]types.Recipe, error) {
	recipes, err := store.Recipes(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		n, err := store.Count(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			logger.Info("recipe database is empty, using sample recipes")
			return recipedb.Samples(), nil
		}
	}
	return recipes, nil
}
