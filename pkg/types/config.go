// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// StoreConfig holds settings for the recipe database.
type StoreConfig struct {
	// Path is the SQLite database file (default "meal_recipes.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults is the default row limit for recipe queries (default 200).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// CollectConfig holds settings for recipe collection from Spoonacular.
type CollectConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIKey is the Spoonacular API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the Spoonacular API root (tests point it at httptest).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// CacheDir holds cached API responses and the daily quota file (default "cache").
	CacheDir string `json:"cache_dir" yaml:"cache_dir" mapstructure:"cache_dir"`

	// MaxDailyCalls is the daily API call budget (default 150).
	MaxDailyCalls int `json:"max_daily_calls" yaml:"max_daily_calls" mapstructure:"max_daily_calls"`

	// BatchSize is the number of recipes requested per call (default 100).
	BatchSize int `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`

	// Delay is the minimum spacing between API calls not served from cache (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`
}

// PlannerConfig holds settings for meal plan generation.
type PlannerConfig struct {
	// CandidateLimit is the number of recipes loaded before filtering (default 200).
	CandidateLimit int `json:"candidate_limit" yaml:"candidate_limit" mapstructure:"candidate_limit"`

	// Seed seeds the weekly shuffle. Zero uses the current time.
	Seed int64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Development enables caller and stack trace annotations.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// Config groups all stage configurations.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
	Collect CollectConfig `json:"collect" yaml:"collect" mapstructure:"collect"`
	Planner PlannerConfig `json:"planner" yaml:"planner" mapstructure:"planner"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
