// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DayPlan assigns one recipe to each meal slot for a single day.
type DayPlan struct {
	// Day is the weekday name for weekly plans; empty for single-day plans.
	Day string `json:"day,omitempty" yaml:"day,omitempty"`

	Breakfast Recipe `json:"breakfast" yaml:"breakfast"`
	Lunch     Recipe `json:"lunch" yaml:"lunch"`
	Dinner    Recipe `json:"dinner" yaml:"dinner"`
	Snack     Recipe `json:"snack" yaml:"snack"`

	TotalCalories float64 `json:"total_calories" yaml:"total_calories"`
	TotalProtein  float64 `json:"total_protein" yaml:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs" yaml:"total_carbs"`
	TotalFat      float64 `json:"total_fat" yaml:"total_fat"`
}

// Meals returns the day's recipes in slot order.
func (d DayPlan) Meals() [4]Recipe {
	return [4]Recipe{d.Breakfast, d.Lunch, d.Dinner, d.Snack}
}

// MealPlan is a generated single-day or weekly plan together with the
// preferences it was built from.
type MealPlan struct {
	// ID is assigned when the plan is saved to history.
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	Type      PlanType    `json:"plan_type" yaml:"plan_type"`
	Prefs     Preferences `json:"preferences" yaml:"preferences"`
	Days      []DayPlan   `json:"days" yaml:"days"`

	// AverageCalories is the mean daily calorie total across Days.
	AverageCalories float64 `json:"average_calories" yaml:"average_calories"`
}
