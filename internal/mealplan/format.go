// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mealplan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// FormatMarkdown writes plan as a Markdown document to w. Single-day plans
// list every meal with its macros and ingredients; weekly plans list one
// section per day followed by the average daily calories.
func FormatMarkdown(plan types.MealPlan, w io.Writer) {
	if plan.Type == types.PlanFullWeek {
		formatWeekMarkdown(plan, w)
		return
	}
	formatDayMarkdown(plan, w)
}

func formatDayMarkdown(plan types.MealPlan, w io.Writer) {
	fmt.Fprintln(w, "# Your Personalized Daily Meal Plan")
	if len(plan.Days) == 0 {
		fmt.Fprintln(w, "\nNo recipes match your preferences.")
		return
	}
	day := plan.Days[0]
	for i, r := range day.Meals() {
		fmt.Fprintf(w, "\n## %s: %s\n", slotTitle(types.Slots[i]), r.Name)
		fmt.Fprintf(w, "**Calories:** %.0f | **Protein:** %.1fg | **Carbs:** %.1fg | **Fat:** %.1fg\n",
			r.Calories, r.Protein, r.Carbs, r.Fat)
		if ing := strings.Join(r.IngredientNames(), ", "); ing != "" {
			fmt.Fprintf(w, "\n%s\n", ing)
		}
	}

	fmt.Fprintln(w, "\n## Daily Nutrition Summary")
	fmt.Fprintf(w, "- **Total Calories:** %.0f (Target: %d)\n", day.TotalCalories, plan.Prefs.Calories)
	fmt.Fprintf(w, "- **Total Protein:** %.1fg\n", day.TotalProtein)
	fmt.Fprintf(w, "- **Total Carbs:** %.1fg\n", day.TotalCarbs)
	fmt.Fprintf(w, "- **Total Fat:** %.1fg\n", day.TotalFat)
	fmt.Fprintf(w, "\n%s\n", footer(plan.Prefs))
}

func formatWeekMarkdown(plan types.MealPlan, w io.Writer) {
	fmt.Fprintln(w, "# Your Personalized Weekly Meal Plan")
	for _, day := range plan.Days {
		fmt.Fprintf(w, "\n## %s\n", day.Day)
		for i, r := range day.Meals() {
			fmt.Fprintf(w, "- **%s:** %s (%.0f calories)\n", slotTitle(types.Slots[i]), r.Name, r.Calories)
		}
		fmt.Fprintf(w, "- **Daily Total:** %.0f calories\n", day.TotalCalories)
	}
	fmt.Fprintln(w, "\n## Weekly Nutrition Summary")
	fmt.Fprintf(w, "%s\n", footer(plan.Prefs))
	fmt.Fprintf(w, "\n**Average Daily Calories:** %.0f (Target: %d)\n", plan.AverageCalories, plan.Prefs.Calories)
}

func footer(prefs types.Preferences) string {
	diet := string(prefs.DietType)
	if diet == "" {
		diet = string(types.DietNone)
	}
	s := fmt.Sprintf("Diet: %s.", diet)
	if len(prefs.Allergies) > 0 {
		s += fmt.Sprintf(" Excludes: %s.", strings.Join(prefs.Allergies, ", "))
	}
	if prefs.Goal != "" {
		s += fmt.Sprintf(" Goal: %s.", prefs.Goal)
	}
	return s
}

func slotTitle(slot types.MealType) string {
	s := string(slot)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatJSON writes plan as indented JSON to w.
func FormatJSON(plan types.MealPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// FormatYAML writes plan as YAML to w.
func FormatYAML(plan types.MealPlan, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return enc.Close()
}

// Format writes plan in the named format: markdown (default), json or yaml.
func Format(plan types.MealPlan, format string, w io.Writer) error {
	switch format {
	case "markdown", "md", "":
		FormatMarkdown(plan, w)
		return nil
	case "json":
		return FormatJSON(plan, w)
	case "yaml":
		return FormatYAML(plan, w)
	}
	return fmt.Errorf("unsupported format %q: use markdown, json or yaml", format)
}

// FormatRecipeTable writes scored recipes as a human-readable table to w.
func FormatRecipeTable(recipes []types.Recipe, w io.Writer) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes match your preferences.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-9s  %-8s  %-7s  %-7s  %-6s  %s\n",
		"Rank", "Name", "Meal", "Calories", "Protein", "Carbs", "Fat", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range recipes {
		fmt.Fprintf(w, "%-4d  %-40s  %-9s  %-8.0f  %-7.1f  %-7.1f  %-6.1f  %d\n",
			i+1, truncate(r.Name, 40), truncate(string(r.MealType), 9), r.Calories, r.Protein, r.Carbs, r.Fat, r.ExpertScore)
	}
	fmt.Fprintf(w, "\n%d recipes\n", len(recipes))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
