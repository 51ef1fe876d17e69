// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mealplan

import (
	"errors"
	"math/rand/v2"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// ErrNoRecipes reports that no plan could be assembled because no recipe
// survived filtering.
var ErrNoRecipes = errors.New("no recipes match your preferences")

// Weekdays names the days of a weekly plan in order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// backfill describes how thin slot lists are topped up from the whole
// filtered collection.
type backfill struct {
	threshold int // slots with fewer candidates are topped up
	limit     int // at most this many recipes are added per slot
}

var (
	dayBackfill  = backfill{threshold: 5, limit: 10}
	weekBackfill = backfill{threshold: 7, limit: 14}
)

// slotFits is the calorie heuristic used to borrow recipes of another meal
// type for a slot.
var slotFits = map[types.MealType]func(calories float64) bool{
	types.MealBreakfast: func(c float64) bool { return c < 500 },
	types.MealLunch:     func(c float64) bool { return c >= 300 && c <= 700 },
	types.MealDinner:    func(c float64) bool { return c >= 400 },
	types.MealSnack:     func(c float64) bool { return c <= 300 },
}

// Slots holds candidate recipes per meal slot.
type Slots map[types.MealType][]types.Recipe

// Partition groups recipes by their meal type. Recipes whose meal type is
// not one of the four slots are left out.
func Partition(recipes []types.Recipe) Slots {
	slots := make(Slots, len(types.Slots))
	for _, r := range recipes {
		if _, ok := slotFits[r.MealType]; ok {
			slots[r.MealType] = append(slots[r.MealType], r)
		}
	}
	return slots
}

// candidates partitions recipes and tops up every slot with fewer than
// bf.threshold entries using that slot's calorie heuristic. Recipes
// already in a slot are not added twice.
func candidates(recipes []types.Recipe, bf backfill) Slots {
	slots := Partition(recipes)
	for _, slot := range types.Slots {
		list := slots[slot]
		if len(list) >= bf.threshold {
			continue
		}
		present := make(map[recipeKey]bool, len(list))
		for _, r := range list {
			present[keyOf(r)] = true
		}
		fits := slotFits[slot]
		added := 0
		for _, r := range recipes {
			if added == bf.limit {
				break
			}
			if !fits(r.Calories) || present[keyOf(r)] {
				continue
			}
			present[keyOf(r)] = true
			list = append(list, r)
			added++
		}
		slots[slot] = list
	}
	return slots
}

type recipeKey struct {
	id   int64
	name string
}

func keyOf(r types.Recipe) recipeKey { return recipeKey{id: r.ID, name: r.Name} }

// PlanDay builds a single-day plan from already filtered recipes. The
// second result is false when no recipe is available for any slot.
func PlanDay(recipes []types.Recipe, prefs types.Preferences) (types.MealPlan, bool) {
	slots := candidates(recipes, dayBackfill)
	combo, ok := FindBestCombination(
		slots[types.MealBreakfast],
		slots[types.MealLunch],
		slots[types.MealDinner],
		slots[types.MealSnack],
		float64(prefs.Calories),
	)
	if !ok {
		return types.MealPlan{}, false
	}
	day := combo.Day("")
	return types.MealPlan{
		Type:            types.PlanSingleDay,
		Prefs:           prefs,
		Days:            []types.DayPlan{day},
		AverageCalories: day.TotalCalories,
	}, true
}

// PlanWeek builds a seven-day plan from already filtered recipes. Each slot
// list is cut or repeated to seven entries, shuffled with rng, and day i
// takes entry i. Recipes may repeat within the week. An empty slot borrows
// another slot's list the same way FindBestCombination does. The second
// result is false when no recipe is available for any slot.
func PlanWeek(recipes []types.Recipe, prefs types.Preferences, rng *rand.Rand) (types.MealPlan, bool) {
	slots := candidates(recipes, weekBackfill)

	b, l, d, s := slots[types.MealBreakfast], slots[types.MealLunch], slots[types.MealDinner], slots[types.MealSnack]
	if len(b) == 0 {
		b = firstNonEmpty(l, d, s)
	}
	if len(l) == 0 {
		l = firstNonEmpty(d, b, s)
	}
	if len(d) == 0 {
		d = firstNonEmpty(l, b, s)
	}
	if len(s) == 0 {
		s = firstNonEmpty(b, l, d)
	}
	if len(b) == 0 {
		return types.MealPlan{}, false
	}

	lists := [][]types.Recipe{b, l, d, s}
	for i, list := range lists {
		list = fillWeek(list)
		rng.Shuffle(len(list), func(x, y int) { list[x], list[y] = list[y], list[x] })
		lists[i] = list
	}

	plan := types.MealPlan{
		Type:  types.PlanFullWeek,
		Prefs: prefs,
		Days:  make([]types.DayPlan, 0, len(Weekdays)),
	}
	var total float64
	for i, name := range Weekdays {
		combo := Combination{
			Breakfast: lists[0][i%len(lists[0])],
			Lunch:     lists[1][i%len(lists[1])],
			Dinner:    lists[2][i%len(lists[2])],
			Snack:     lists[3][i%len(lists[3])],
		}
		day := combo.Day(name)
		total += day.TotalCalories
		plan.Days = append(plan.Days, day)
	}
	plan.AverageCalories = total / float64(len(Weekdays))
	return plan, true
}

// fillWeek returns a fresh list of at least seven entries: the first seven
// of list, or list repeated enough times to reach seven.
func fillWeek(list []types.Recipe) []types.Recipe {
	n := len(Weekdays)
	if len(list) >= n {
		return append([]types.Recipe(nil), list[:n]...)
	}
	out := make([]types.Recipe, 0, (n/len(list)+1)*len(list))
	for range n/len(list) + 1 {
		out = append(out, list...)
	}
	return out
}
