// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spoonacular

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/meal-engine/pkg/types"
)

func TestCookingStatus(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		dishTypes []string
		minutes   int
		want      types.CookingStatus
	}{
		{"salad dish type", "Greek Bowl", []string{"Salad"}, 30, types.StatusUncooked},
		{"drink dish type", "Morning Boost", []string{"drink"}, 30, types.StatusUncooked},
		{"title keyword", "Overnight Oats", []string{"breakfast"}, 480, types.StatusUncooked},
		{"title keyword case", "RAW Energy Bites", nil, 30, types.StatusUncooked},
		{"quick recipe", "Toast", []string{"breakfast"}, 5, types.StatusLikelyUncooked},
		{"cooked", "Beef Stew", []string{"main course"}, 90, types.StatusCooked},
		{"ten minutes is cooked", "Omelette", nil, 10, types.StatusCooked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CookingStatus(tt.title, tt.dishTypes, tt.minutes))
		})
	}
}

func TestNutritionTags(t *testing.T) {
	tests := []struct {
		name                       string
		protein, carbs, fat, fiber float64
		want                       []string
	}{
		{"all", 30, 10, 5, 9, []string{"high_protein", "low_carb", "low_fat", "high_fiber"}},
		{"none", 25, 15, 10, 8, nil},
		{"protein only", 25.1, 40, 20, 2, []string{"high_protein"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NutritionTags(tt.protein, tt.carbs, tt.fat, tt.fiber))
		})
	}
}

func TestMealTypeOf(t *testing.T) {
	assert.Equal(t, types.MealType("breakfast"), mealTypeOf([]string{"morning meal", "Breakfast", "brunch"}))
	assert.Equal(t, types.MealType("main course"), mealTypeOf([]string{"lunch", "dinner"}))
	assert.Equal(t, types.MealType("main course"), mealTypeOf(nil))
}

func TestToRecipeWithoutNutrition(t *testing.T) {
	r := toRecipe(apiRecipe{ID: 7, Title: "Water", ReadyInMinutes: 1, DishTypes: []string{"beverage"}})
	assert.Equal(t, int64(7), r.ID)
	assert.Zero(t, r.Calories)
	assert.Equal(t, types.StatusUncooked, r.CookingStatus)
	assert.Equal(t, types.MealType("beverage"), r.MealType)
	assert.Equal(t, "low_carb,low_fat", r.DietTags)
	assert.Empty(t, r.Ingredients)
}
