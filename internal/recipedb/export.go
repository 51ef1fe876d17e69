// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipedb

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meal-engine/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes every stored recipe, with full ingredient lists, to w
// as a YAML sequence.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	recipes, err := s.exportRecipes(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes every stored recipe, with full ingredient lists, to w
// as an indented JSON array.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	recipes, err := s.exportRecipes(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipes); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"id", "title", "image", "source_url", "ready_in_minutes", "servings",
	"calories", "protein", "carbs", "fat", "fiber",
	"cooking_status", "category", "meal_type", "diet_tags", "ingredients",
}

// ExportCSV writes every stored recipe to w as CSV with a header row.
// Ingredients are rendered as "name (amount unit)" joined by commas.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) error {
	recipes, err := s.exportRecipes(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range recipes {
		ingredients := make([]string, len(r.IngredientList))
		for i, ing := range r.IngredientList {
			ingredients[i] = strings.TrimSpace(fmt.Sprintf("%s (%s %s)", ing.Name, formatFloat(ing.Amount), ing.Unit))
		}
		record := []string{
			strconv.FormatInt(r.ID, 10), r.Name, r.Image, r.SourceURL,
			strconv.Itoa(r.ReadyInMinutes), strconv.Itoa(r.Servings),
			formatFloat(r.Calories), formatFloat(r.Protein), formatFloat(r.Carbs),
			formatFloat(r.Fat), formatFloat(r.Fiber),
			string(r.CookingStatus), r.Category, string(r.MealType), r.DietTags,
			strings.Join(ingredients, ","),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing recipe %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s *Store) exportRecipes(ctx context.Context) ([]types.Recipe, error) {
	listed, err := s.Recipes(ctx, Query{Limit: exportLimit})
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	recipes := make([]types.Recipe, 0, len(listed))
	for _, r := range listed {
		full, err := s.ByID(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("loading recipe %d for export: %w", r.ID, err)
		}
		recipes = append(recipes, full)
	}
	return recipes, nil
}
