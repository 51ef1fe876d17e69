// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"strings"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// Band is a {min, max} range: calories for a meal slot, or a fraction of
// calories for a macronutrient.
type Band struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Mid returns the midpoint of the band.
func (b Band) Mid() float64 { return (b.Min + b.Max) / 2 }

// Contains reports whether min <= v <= max.
func (b Band) Contains(v float64) bool { return b.Min <= v && v <= b.Max }

// SlotBands maps each meal slot to its calorie band.
type SlotBands map[types.MealType]Band

type slotShare struct {
	slot     types.MealType
	min, max float64
}

// Shares of the daily total per slot, by total-calorie bracket. The medium
// and high brackets are numerically identical.
var (
	lowCalorieShares = []slotShare{
		{types.MealBreakfast, 0.20, 0.25},
		{types.MealLunch, 0.30, 0.35},
		{types.MealDinner, 0.30, 0.35},
		{types.MealSnack, 0.10, 0.15},
	}
	mediumCalorieShares = []slotShare{
		{types.MealBreakfast, 0.25, 0.30},
		{types.MealLunch, 0.30, 0.35},
		{types.MealDinner, 0.30, 0.35},
		{types.MealSnack, 0.05, 0.10},
	}
	highCalorieShares = []slotShare{
		{types.MealBreakfast, 0.25, 0.30},
		{types.MealLunch, 0.30, 0.35},
		{types.MealDinner, 0.30, 0.35},
		{types.MealSnack, 0.05, 0.10},
	}
)

// CalorieDistribution returns the per-slot calorie bands for a daily total.
// Totals below 1800 get a larger snack share; 1800 and above share one set
// of percentages.
func CalorieDistribution(total float64) SlotBands {
	shares := highCalorieShares
	switch {
	case total < 1800:
		shares = lowCalorieShares
	case total < 2400:
		shares = mediumCalorieShares
	}

	bands := make(SlotBands, len(shares))
	for _, s := range shares {
		bands[s.slot] = Band{Min: total * s.min, Max: total * s.max}
	}
	return bands
}

// MacroBands holds the target calorie-fraction band per macronutrient.
type MacroBands struct {
	Protein Band `json:"protein" yaml:"protein"`
	Carbs   Band `json:"carbs" yaml:"carbs"`
	Fat     Band `json:"fat" yaml:"fat"`
}

// Midpoints returns the midpoint of each band.
func (m MacroBands) Midpoints() Macros {
	return Macros{Protein: m.Protein.Mid(), Carbs: m.Carbs.Mid(), Fat: m.Fat.Mid()}
}

type goalProfile struct {
	keywords []string
	bands    MacroBands
}

// goalProfiles are checked in order; the first keyword hit wins.
var goalProfiles = []goalProfile{
	{
		keywords: []string{"weight loss", "lose weight", "fat loss"},
		bands:    MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.20, 0.30}, Fat: Band{0.30, 0.40}},
	},
	{
		keywords: []string{"muscle", "strength", "gain"},
		bands:    MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.40, 0.50}, Fat: Band{0.20, 0.30}},
	},
	{
		keywords: []string{"heart", "cardio", "cholesterol"},
		bands:    MacroBands{Protein: Band{0.25, 0.35}, Carbs: Band{0.45, 0.55}, Fat: Band{0.20, 0.30}},
	},
}

var maintenanceBands = MacroBands{Protein: Band{0.25, 0.35}, Carbs: Band{0.40, 0.50}, Fat: Band{0.25, 0.35}}

// MacroDistribution returns the macronutrient bands for a free-text goal.
// Matching is a case-insensitive substring search; an empty or unmatched
// goal gets the maintenance bands.
func MacroDistribution(goal string) MacroBands {
	goal = strings.ToLower(goal)
	for _, p := range goalProfiles {
		for _, kw := range p.keywords {
			if strings.Contains(goal, kw) {
				return p.bands
			}
		}
	}
	return maintenanceBands
}
