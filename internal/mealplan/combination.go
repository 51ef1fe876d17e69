// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mealplan assembles filtered recipes into daily and weekly meal
// plans. The combination search picks one recipe per slot so that the day's
// calorie total lands as close as possible to a target.
package mealplan

import (
	"math"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// maxCandidatesPerSlot bounds the brute-force search to 10^4 combinations.
const maxCandidatesPerSlot = 10

// Combination is one recipe per meal slot.
type Combination struct {
	Breakfast types.Recipe
	Lunch     types.Recipe
	Dinner    types.Recipe
	Snack     types.Recipe
}

// Calories returns the combination's calorie total.
func (c Combination) Calories() float64 {
	return c.Breakfast.Calories + c.Lunch.Calories + c.Dinner.Calories + c.Snack.Calories
}

// Day converts the combination into a DayPlan with nutrition totals.
func (c Combination) Day(name string) types.DayPlan {
	d := types.DayPlan{
		Day:       name,
		Breakfast: c.Breakfast,
		Lunch:     c.Lunch,
		Dinner:    c.Dinner,
		Snack:     c.Snack,
	}
	for _, r := range d.Meals() {
		d.TotalCalories += r.Calories
		d.TotalProtein += r.Protein
		d.TotalCarbs += r.Carbs
		d.TotalFat += r.Fat
	}
	return d
}

// FindBestCombination returns the combination of one breakfast, lunch,
// dinner and snack whose calorie total deviates least from target.
//
// An empty slot borrows another slot's list through a fixed chain:
// breakfast from lunch, dinner, snack; lunch from dinner, breakfast, snack;
// dinner from lunch, breakfast, snack; snack from breakfast, lunch, dinner.
// Each list is then capped at its first ten entries and the full cartesian
// product is searched. Ties keep the first combination found. The second
// result is false when every list is empty. The inputs are not modified.
func FindBestCombination(breakfast, lunch, dinner, snack []types.Recipe, target float64) (Combination, bool) {
	if len(breakfast) == 0 {
		breakfast = firstNonEmpty(lunch, dinner, snack)
	}
	if len(lunch) == 0 {
		lunch = firstNonEmpty(dinner, breakfast, snack)
	}
	if len(dinner) == 0 {
		dinner = firstNonEmpty(lunch, breakfast, snack)
	}
	if len(snack) == 0 {
		snack = firstNonEmpty(breakfast, lunch, dinner)
	}
	if len(breakfast) == 0 || len(lunch) == 0 || len(dinner) == 0 || len(snack) == 0 {
		return Combination{}, false
	}

	breakfast = capped(breakfast)
	lunch = capped(lunch)
	dinner = capped(dinner)
	snack = capped(snack)

	var (
		best     Combination
		found    bool
		bestDiff = math.Inf(1)
	)
	for _, b := range breakfast {
		for _, l := range lunch {
			for _, d := range dinner {
				for _, s := range snack {
					total := b.Calories + l.Calories + d.Calories + s.Calories
					if diff := math.Abs(total - target); diff < bestDiff {
						bestDiff = diff
						best = Combination{Breakfast: b, Lunch: l, Dinner: d, Snack: s}
						found = true
					}
				}
			}
		}
	}
	if !found {
		// Only reachable when every total is NaN.
		return Combination{Breakfast: breakfast[0], Lunch: lunch[0], Dinner: dinner[0], Snack: snack[0]}, true
	}
	return best, true
}

func firstNonEmpty(lists ...[]types.Recipe) []types.Recipe {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

func capped(list []types.Recipe) []types.Recipe {
	if len(list) > maxCandidatesPerSlot {
		return list[:maxCandidatesPerSlot]
	}
	return list
}
