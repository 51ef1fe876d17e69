// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recipedb persists recipes in a local SQLite database and serves
// the recipe lookups the recommender consumes: filtered listing, text
// search, lookup by ID, export, and a history of generated meal plans.
package recipedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/meal-engine/pkg/types"
)

const (
	defaultPath       = "meal_recipes.db"
	defaultMaxResults = 200
)

// ErrNotFound is returned when a recipe or plan does not exist.
var ErrNotFound = errors.New("not found")

// Store manages the recipe SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
	log        *zap.Logger
}

// NewStore opens or creates the recipe database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.StoreConfig, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults, log: log}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	log.Debug("opened recipe database", zap.String("path", path))
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			image TEXT,
			source_url TEXT,
			ready_in_minutes INTEGER,
			servings INTEGER,
			calories REAL,
			protein REAL,
			carbs REAL,
			fat REAL,
			fiber REAL,
			summary TEXT,
			cooking_status TEXT,
			category TEXT,
			meal_type TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recipe_id INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			amount REAL,
			unit TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS diet_tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recipe_id INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			tag TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ingredients_recipe_id ON ingredients(recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_diet_tags_recipe_id ON diet_tags(recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_meal_type ON recipes(meal_type)`,
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			plan_type TEXT NOT NULL,
			diet_type TEXT,
			calories INTEGER,
			average_calories REAL,
			days INTEGER,
			body TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Upsert inserts or replaces recipes together with their ingredient and
// diet tag rows. All recipes are written in one transaction.
func (s *Store) Upsert(ctx context.Context, recipes ...types.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range recipes {
		if err := upsertRecipe(ctx, tx, r); err != nil {
			return fmt.Errorf("saving recipe %d: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recipes: %w", err)
	}
	s.log.Debug("saved recipes", zap.Int("count", len(recipes)))
	return nil
}

func upsertRecipe(ctx context.Context, tx *sql.Tx, r types.Recipe) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO recipes (id, title, image, source_url, ready_in_minutes, servings,
			calories, protein, carbs, fat, fiber, summary, cooking_status, category, meal_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, image=excluded.image, source_url=excluded.source_url,
			ready_in_minutes=excluded.ready_in_minutes, servings=excluded.servings,
			calories=excluded.calories, protein=excluded.protein, carbs=excluded.carbs,
			fat=excluded.fat, fiber=excluded.fiber, summary=excluded.summary,
			cooking_status=excluded.cooking_status, category=excluded.category,
			meal_type=excluded.meal_type`,
		r.ID, r.Name, r.Image, r.SourceURL, r.ReadyInMinutes, r.Servings,
		r.Calories, r.Protein, r.Carbs, r.Fat, r.Fiber, r.Summary,
		string(r.CookingStatus), r.Category, string(r.MealType),
	)
	if err != nil {
		return fmt.Errorf("upserting recipe: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, r.ID); err != nil {
		return fmt.Errorf("deleting old ingredients: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM diet_tags WHERE recipe_id = ?`, r.ID); err != nil {
		return fmt.Errorf("deleting old diet tags: %w", err)
	}

	ingredients := r.IngredientList
	if len(ingredients) == 0 {
		for _, name := range types.SplitList(r.Ingredients) {
			ingredients = append(ingredients, types.Ingredient{Name: name})
		}
	}
	for _, ing := range ingredients {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ingredients (recipe_id, name, amount, unit) VALUES (?, ?, ?, ?)`,
			r.ID, ing.Name, ing.Amount, ing.Unit,
		); err != nil {
			return fmt.Errorf("inserting ingredient %q: %w", ing.Name, err)
		}
	}

	for _, tag := range r.Tags() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO diet_tags (recipe_id, tag) VALUES (?, ?)`, r.ID, tag,
		); err != nil {
			return fmt.Errorf("inserting diet tag %q: %w", tag, err)
		}
	}
	return nil
}

// Count returns the number of stored recipes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}
	return n, nil
}
