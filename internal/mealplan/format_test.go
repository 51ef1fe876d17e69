// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mealplan

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meal-engine/pkg/types"
)

func samplePlan() types.MealPlan {
	c := Combination{
		Breakfast: types.Recipe{ID: 1, Name: "Overnight Oats", Calories: 350, Protein: 12, Carbs: 55, Fat: 8, Ingredients: "oats, milk, honey"},
		Lunch:     types.Recipe{ID: 2, Name: "Quinoa Bowl", Calories: 550, Protein: 20, Carbs: 70, Fat: 15},
		Dinner:    types.Recipe{ID: 3, Name: "Salmon Rice", Calories: 800, Protein: 45, Carbs: 80, Fat: 25},
		Snack:     types.Recipe{ID: 4, Name: "Hummus", Calories: 200, Protein: 6, Carbs: 20, Fat: 10},
	}
	day := c.Day("")
	return types.MealPlan{
		Type:            types.PlanSingleDay,
		Prefs:           types.Preferences{DietType: types.DietPescatarian, Allergies: []string{"Nuts"}, Calories: 2000, Goal: "heart health"},
		Days:            []types.DayPlan{day},
		AverageCalories: day.TotalCalories,
	}
}

func TestFormatMarkdownDay(t *testing.T) {
	var buf bytes.Buffer
	FormatMarkdown(samplePlan(), &buf)
	out := buf.String()

	assert.Contains(t, out, "# Your Personalized Daily Meal Plan")
	assert.Contains(t, out, "## Breakfast: Overnight Oats")
	assert.Contains(t, out, "## Snack: Hummus")
	assert.Contains(t, out, "oats, milk, honey")
	assert.Contains(t, out, "**Total Calories:** 1900 (Target: 2000)")
	assert.Contains(t, out, "Excludes: Nuts.")
	assert.Contains(t, out, "Goal: heart health.")
}

func TestFormatMarkdownWeek(t *testing.T) {
	plan := samplePlan()
	plan.Type = types.PlanFullWeek
	plan.Days[0].Day = "Monday"

	var buf bytes.Buffer
	FormatMarkdown(plan, &buf)
	out := buf.String()

	assert.Contains(t, out, "# Your Personalized Weekly Meal Plan")
	assert.Contains(t, out, "## Monday")
	assert.Contains(t, out, "- **Lunch:** Quinoa Bowl (550 calories)")
	assert.Contains(t, out, "**Average Daily Calories:** 1900 (Target: 2000)")
}

func TestFormatMarkdownNoDays(t *testing.T) {
	var buf bytes.Buffer
	FormatMarkdown(types.MealPlan{}, &buf)
	assert.Contains(t, buf.String(), "No recipes match")
}

func TestFormatStructured(t *testing.T) {
	plan := samplePlan()

	var js bytes.Buffer
	require.NoError(t, Format(plan, "json", &js))
	var decoded types.MealPlan
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, "Salmon Rice", decoded.Days[0].Dinner.Name)

	var ym bytes.Buffer
	require.NoError(t, Format(plan, "yaml", &ym))
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &raw))
	assert.Equal(t, "Single Day Plan", raw["plan_type"])

	assert.Error(t, Format(plan, "pdf", &bytes.Buffer{}))
}

func TestFormatRecipeTable(t *testing.T) {
	var buf bytes.Buffer
	FormatRecipeTable([]types.Recipe{
		{Name: "A very long recipe name that will certainly need truncation", MealType: types.MealLunch, Calories: 500, ExpertScore: 1},
	}, &buf)
	out := buf.String()
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "1 recipes")

	buf.Reset()
	FormatRecipeTable(nil, &buf)
	assert.Contains(t, buf.String(), "No recipes match")
}
