// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mealplan

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meal-engine/pkg/types"
)

func meal(id int64, slot types.MealType, calories float64) types.Recipe {
	return types.Recipe{ID: id, Name: string(slot), MealType: slot, Calories: calories, Protein: 10, Carbs: 20, Fat: 5}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPartition(t *testing.T) {
	recipes := []types.Recipe{
		meal(1, types.MealBreakfast, 300),
		meal(2, types.MealOther, 300),
		meal(3, types.MealSnack, 100),
		meal(4, types.MealBreakfast, 350),
		meal(5, "main course", 600),
	}
	slots := Partition(recipes)
	assert.Len(t, slots[types.MealBreakfast], 2)
	assert.Len(t, slots[types.MealSnack], 1)
	assert.Empty(t, slots[types.MealLunch])
	assert.Empty(t, slots[types.MealOther])
}

func TestCandidatesBackfillByCalories(t *testing.T) {
	recipes := []types.Recipe{
		meal(1, types.MealOther, 250),
		meal(2, types.MealOther, 450),
		meal(3, types.MealOther, 650),
		meal(4, types.MealOther, 900),
	}
	slots := candidates(recipes, dayBackfill)

	idsOf := func(list []types.Recipe) []int64 {
		var out []int64
		for _, r := range list {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Equal(t, []int64{1, 2}, idsOf(slots[types.MealBreakfast]))
	assert.Equal(t, []int64{2, 3}, idsOf(slots[types.MealLunch]))
	assert.Equal(t, []int64{2, 3, 4}, idsOf(slots[types.MealDinner]))
	assert.Equal(t, []int64{1}, idsOf(slots[types.MealSnack]))
}

func TestCandidatesBackfillSkipsFullSlotsAndDuplicates(t *testing.T) {
	var recipes []types.Recipe
	for i := range 5 {
		recipes = append(recipes, meal(int64(i+1), types.MealBreakfast, 400))
	}
	recipes = append(recipes, meal(10, types.MealSnack, 200), meal(11, types.MealOther, 150))

	slots := candidates(recipes, dayBackfill)
	assert.Len(t, slots[types.MealBreakfast], 5, "full slot is not topped up")
	// The snack already holds recipe 10; the heuristic adds 11 only.
	require.Len(t, slots[types.MealSnack], 2)
	assert.Equal(t, int64(10), slots[types.MealSnack][0].ID)
	assert.Equal(t, int64(11), slots[types.MealSnack][1].ID)
}

func TestCandidatesBackfillLimit(t *testing.T) {
	var recipes []types.Recipe
	for i := range 20 {
		recipes = append(recipes, meal(int64(i+1), types.MealOther, 100))
	}
	assert.Len(t, candidates(recipes, dayBackfill)[types.MealSnack], 10)
	assert.Len(t, candidates(recipes, weekBackfill)[types.MealSnack], 14)
}

func TestPlanDay(t *testing.T) {
	recipes := []types.Recipe{
		meal(1, types.MealBreakfast, 300),
		meal(2, types.MealBreakfast, 700),
		meal(3, types.MealLunch, 600),
		meal(4, types.MealDinner, 800),
		meal(5, types.MealSnack, 200),
	}
	prefs := types.Preferences{DietType: types.DietNone, Calories: 2000}

	plan, ok := PlanDay(recipes, prefs)
	require.True(t, ok)
	assert.Equal(t, types.PlanSingleDay, plan.Type)
	require.Len(t, plan.Days, 1)

	day := plan.Days[0]
	assert.Equal(t, day.TotalCalories, plan.AverageCalories)
	assert.Equal(t, 40.0, day.TotalProtein)
	assert.LessOrEqual(t, abs(day.TotalCalories-2000), 100.0)
}

func TestPlanDayEmpty(t *testing.T) {
	_, ok := PlanDay(nil, types.DefaultPreferences())
	assert.False(t, ok)
}

func TestPlanWeek(t *testing.T) {
	var recipes []types.Recipe
	id := int64(1)
	for _, slot := range types.Slots {
		for range 9 {
			recipes = append(recipes, meal(id, slot, 100+float64(id)))
			id++
		}
	}
	prefs := types.Preferences{Calories: 2000, PlanType: types.PlanFullWeek}

	plan, ok := PlanWeek(recipes, prefs, testRand())
	require.True(t, ok)
	assert.Equal(t, types.PlanFullWeek, plan.Type)
	require.Len(t, plan.Days, 7)

	var total float64
	for i, day := range plan.Days {
		assert.Equal(t, Weekdays[i], day.Day)
		assert.Equal(t, types.MealBreakfast, day.Breakfast.MealType)
		assert.Equal(t, types.MealSnack, day.Snack.MealType)
		// Only the first seven of each slot are used.
		assert.LessOrEqual(t, day.Breakfast.ID, int64(7))
		total += day.TotalCalories
	}
	assert.InDelta(t, total/7, plan.AverageCalories, 1e-9)
}

func TestPlanWeekRepeatsShortLists(t *testing.T) {
	recipes := []types.Recipe{
		meal(1, types.MealBreakfast, 750),
		meal(2, types.MealBreakfast, 800),
		meal(3, types.MealLunch, 900),
		meal(4, types.MealDinner, 1000),
		meal(5, types.MealSnack, 710),
	}
	plan, ok := PlanWeek(recipes, types.DefaultPreferences(), testRand())
	require.True(t, ok)
	require.Len(t, plan.Days, 7)
	seen := map[int64]int{}
	for _, day := range plan.Days {
		assert.Contains(t, []int64{1, 2}, day.Breakfast.ID)
		assert.Equal(t, int64(3), day.Lunch.ID)
		assert.Equal(t, int64(5), day.Snack.ID)
		seen[day.Breakfast.ID]++
	}
	assert.Len(t, seen, 2, "both breakfasts are used")
}

func TestPlanWeekBorrowsEmptySlot(t *testing.T) {
	// No snack and nothing light enough for the snack heuristic.
	recipes := []types.Recipe{
		meal(1, types.MealBreakfast, 450),
		meal(2, types.MealLunch, 650),
		meal(3, types.MealDinner, 800),
	}
	plan, ok := PlanWeek(recipes, types.DefaultPreferences(), testRand())
	require.True(t, ok)
	for _, day := range plan.Days {
		assert.NotZero(t, day.Snack.ID)
	}
}

func TestPlanWeekDeterministicForSeed(t *testing.T) {
	var recipes []types.Recipe
	for i := range 12 {
		recipes = append(recipes, meal(int64(i+1), types.Slots[i%4], 300))
	}
	a, _ := PlanWeek(recipes, types.DefaultPreferences(), testRand())
	b, _ := PlanWeek(recipes, types.DefaultPreferences(), testRand())
	assert.Equal(t, a, b)
}

func TestPlanWeekEmpty(t *testing.T) {
	_, ok := PlanWeek(nil, types.DefaultPreferences(), testRand())
	assert.False(t, ok)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
