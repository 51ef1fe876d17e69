// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the meal-engine pipeline:
// recipe records, user preferences, meal plans, and per-stage configuration.
package types

import (
	"strings"
)

// MealType is the meal slot a recipe is intended for.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealOther     MealType = "other"
)

// Slots lists the four meal slots in plan order.
var Slots = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// CookingStatus records whether a recipe needs cooking.
type CookingStatus string

const (
	StatusCooked         CookingStatus = "cooked"
	StatusUncooked       CookingStatus = "uncooked"
	StatusLikelyUncooked CookingStatus = "likely_uncooked"
)

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// Recipe is a normalized recipe record as stored in the recipe database and
// consumed by the rule engine.
type Recipe struct {
	// ID is the unique recipe identifier (Spoonacular ID for collected recipes).
	ID int64 `json:"id" yaml:"id"`

	// Name is the recipe title.
	Name string `json:"name" yaml:"name"`

	Image          string `json:"image,omitempty" yaml:"image,omitempty"`
	SourceURL      string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	ReadyInMinutes int    `json:"ready_in_minutes,omitempty" yaml:"ready_in_minutes,omitempty"`
	Servings       int    `json:"servings,omitempty" yaml:"servings,omitempty"`
	Summary        string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Calories is the per-serving energy in kcal. Never negative.
	Calories float64 `json:"calories" yaml:"calories"`

	// Protein, Carbs, Fat and Fiber are grams per serving.
	Protein float64 `json:"protein" yaml:"protein"`
	Carbs   float64 `json:"carbs" yaml:"carbs"`
	Fat     float64 `json:"fat" yaml:"fat"`
	Fiber   float64 `json:"fiber,omitempty" yaml:"fiber,omitempty"`

	// Ingredients is the comma-separated ingredient name list used for
	// allergen matching.
	Ingredients string `json:"ingredients" yaml:"ingredients"`

	// IngredientList carries amounts and units when the full record is loaded.
	IngredientList []Ingredient `json:"ingredient_list,omitempty" yaml:"ingredient_list,omitempty"`

	// DietTags is a comma-separated list of lowercase tags ("vegan,gluten-free").
	DietTags string `json:"diet_tags" yaml:"diet_tags"`

	// Category is a comma-separated list of lowercase diet categories. It
	// overlaps DietTags; either may be populated.
	Category string `json:"category" yaml:"category"`

	CookingStatus CookingStatus `json:"cooking_status" yaml:"cooking_status"`
	MealType      MealType      `json:"meal_type" yaml:"meal_type"`

	// ExpertScore is the number of preference rules the recipe satisfies.
	// Set only on filtered copies.
	ExpertScore int `json:"expert_score,omitempty" yaml:"expert_score,omitempty"`
}

// Field returns the named field of the recipe using the snake_case names of
// the recipe record. It reports false for unknown names.
func (r Recipe) Field(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "name", "title":
		return r.Name, true
	case "calories":
		return r.Calories, true
	case "protein":
		return r.Protein, true
	case "carbs":
		return r.Carbs, true
	case "fat":
		return r.Fat, true
	case "fiber":
		return r.Fiber, true
	case "ingredients":
		return r.Ingredients, true
	case "diet_tags":
		return r.DietTags, true
	case "category":
		return r.Category, true
	case "cooking_status":
		return string(r.CookingStatus), true
	case "meal_type":
		return string(r.MealType), true
	case "expert_score":
		return r.ExpertScore, true
	}
	return nil, false
}

// Tags splits DietTags into trimmed, non-empty tags.
func (r Recipe) Tags() []string {
	return SplitList(r.DietTags)
}

// IngredientNames returns the ingredient names, preferring IngredientList
// over the comma-separated Ingredients text.
func (r Recipe) IngredientNames() []string {
	if len(r.IngredientList) > 0 {
		names := make([]string, 0, len(r.IngredientList))
		for _, ing := range r.IngredientList {
			if n := strings.TrimSpace(ing.Name); n != "" {
				names = append(names, n)
			}
		}
		return names
	}
	return SplitList(r.Ingredients)
}

// Record is a loosely typed recipe record, as read from a JSON or YAML file.
// Values may be strings where numbers are expected; the rule engine coerces
// them.
type Record map[string]any

// Field returns the raw value stored under name.
func (r Record) Field(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// SplitList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
