// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// Query holds optional filters for recipe listings. Zero values disable a
// filter.
type Query struct {
	// Limit caps the number of rows. Zero uses the store default.
	Limit int

	// DietType matches the recipe category or any diet tag, as a
	// case-insensitive substring.
	DietType string

	// MealType matches the meal type as a case-insensitive substring.
	MealType string

	// CookingStatus matches exactly.
	CookingStatus types.CookingStatus

	// MinCalories and MaxCalories bound the calorie count inclusively.
	MinCalories float64
	MaxCalories float64
}

const selectRecipe = `SELECT r.id, COALESCE(r.title, ''), COALESCE(r.image, ''),
		COALESCE(r.calories, 0), COALESCE(r.protein, 0), COALESCE(r.carbs, 0),
		COALESCE(r.fat, 0), COALESCE(r.fiber, 0),
		COALESCE(r.cooking_status, ''), COALESCE(r.category, ''), COALESCE(r.meal_type, ''),
		GROUP_CONCAT(DISTINCT dt.tag) AS diet_tags,
		GROUP_CONCAT(DISTINCT i.name) AS ingredients
	FROM recipes r
	LEFT JOIN diet_tags dt ON r.id = dt.recipe_id
	LEFT JOIN ingredients i ON r.id = i.recipe_id
	WHERE 1=1`

// Recipes returns recipes matching q, ordered by ID. Ingredient names and
// diet tags are aggregated into comma-separated text.
func (s *Store) Recipes(ctx context.Context, q Query) ([]types.Recipe, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectRecipe)
	args = q.where(&qb, args)
	return s.queryRecipes(ctx, &qb, args, q.Limit)
}

// Search returns recipes whose title or any ingredient name contains text.
// The filters in q still apply. Empty text is the same as Recipes.
func (s *Store) Search(ctx context.Context, text string, q Query) ([]types.Recipe, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Recipes(ctx, q)
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectRecipe)
	qb.WriteString(` AND (r.title LIKE ? OR EXISTS (SELECT 1 FROM ingredients WHERE recipe_id = r.id AND name LIKE ?))`)
	args = append(args, like(text), like(text))
	args = q.where(&qb, args)
	return s.queryRecipes(ctx, &qb, args, q.Limit)
}

func (q Query) where(qb *strings.Builder, args []any) []any {
	if q.DietType != "" {
		qb.WriteString(` AND (r.category LIKE ? OR EXISTS (SELECT 1 FROM diet_tags WHERE recipe_id = r.id AND tag LIKE ?))`)
		args = append(args, like(q.DietType), like(q.DietType))
	}
	if q.MealType != "" {
		qb.WriteString(` AND r.meal_type LIKE ?`)
		args = append(args, like(q.MealType))
	}
	if q.CookingStatus != "" {
		qb.WriteString(` AND r.cooking_status = ?`)
		args = append(args, string(q.CookingStatus))
	}
	if q.MinCalories > 0 {
		qb.WriteString(` AND r.calories >= ?`)
		args = append(args, q.MinCalories)
	}
	if q.MaxCalories > 0 {
		qb.WriteString(` AND r.calories <= ?`)
		args = append(args, q.MaxCalories)
	}
	return args
}

func like(s string) string {
	return "%" + s + "%"
}

func (s *Store) queryRecipes(ctx context.Context, qb *strings.Builder, args []any, limit int) ([]types.Recipe, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	qb.WriteString(` GROUP BY r.id ORDER BY r.id LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var recipes []types.Recipe
	for rows.Next() {
		var (
			r             types.Recipe
			status, meal  string
			tags, ingreds sql.NullString
		)
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Image,
			&r.Calories, &r.Protein, &r.Carbs, &r.Fat, &r.Fiber,
			&status, &r.Category, &meal,
			&tags, &ingreds,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.CookingStatus = types.CookingStatus(status)
		r.MealType = types.MealType(meal)
		r.DietTags = tags.String
		r.Ingredients = ingreds.String
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// ByID returns the recipe with the given ID, including its full ingredient
// list with amounts and units. It returns ErrNotFound if no such recipe
// exists.
func (s *Store) ByID(ctx context.Context, id int64) (types.Recipe, error) {
	var (
		r            types.Recipe
		status, meal string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(image, ''), COALESCE(source_url, ''),
			COALESCE(ready_in_minutes, 0), COALESCE(servings, 0),
			COALESCE(calories, 0), COALESCE(protein, 0), COALESCE(carbs, 0),
			COALESCE(fat, 0), COALESCE(fiber, 0), COALESCE(summary, ''),
			COALESCE(cooking_status, ''), COALESCE(category, ''), COALESCE(meal_type, '')
		 FROM recipes WHERE id = ?`, id,
	).Scan(
		&r.ID, &r.Name, &r.Image, &r.SourceURL, &r.ReadyInMinutes, &r.Servings,
		&r.Calories, &r.Protein, &r.Carbs, &r.Fat, &r.Fiber, &r.Summary,
		&status, &r.Category, &meal,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Recipe{}, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.Recipe{}, fmt.Errorf("looking up recipe %d: %w", id, err)
	}
	r.CookingStatus = types.CookingStatus(status)
	r.MealType = types.MealType(meal)

	if err := s.loadDetails(ctx, &r); err != nil {
		return types.Recipe{}, err
	}
	return r, nil
}

// loadDetails fills the ingredient list and diet tags of r.
func (s *Store) loadDetails(ctx context.Context, r *types.Recipe) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, COALESCE(amount, 0), COALESCE(unit, '') FROM ingredients WHERE recipe_id = ? ORDER BY id`, r.ID)
	if err != nil {
		return fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	r.IngredientList = nil
	names := make([]string, 0)
	for rows.Next() {
		var ing types.Ingredient
		if err := rows.Scan(&ing.Name, &ing.Amount, &ing.Unit); err != nil {
			return fmt.Errorf("scanning ingredient: %w", err)
		}
		r.IngredientList = append(r.IngredientList, ing)
		names = append(names, ing.Name)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	r.Ingredients = strings.Join(names, ",")

	tagRows, err := s.db.QueryContext(ctx, `SELECT tag FROM diet_tags WHERE recipe_id = ? ORDER BY id`, r.ID)
	if err != nil {
		return fmt.Errorf("querying diet tags: %w", err)
	}
	defer tagRows.Close()

	var tags []string
	for tagRows.Next() {
		var tag string
		if err := tagRows.Scan(&tag); err != nil {
			return fmt.Errorf("scanning diet tag: %w", err)
		}
		tags = append(tags, tag)
	}
	r.DietTags = strings.Join(tags, ",")
	return tagRows.Err()
}
