// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meal-engine/pkg/types"
)

func TestCalorieDistribution(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  SlotBands
	}{
		{
			name:  "low bracket",
			total: 1500,
			want: SlotBands{
				types.MealBreakfast: {Min: 300, Max: 375},
				types.MealLunch:     {Min: 450, Max: 525},
				types.MealDinner:    {Min: 450, Max: 525},
				types.MealSnack:     {Min: 150, Max: 225},
			},
		},
		{
			name:  "medium bracket lower edge",
			total: 1800,
			want: SlotBands{
				types.MealBreakfast: {Min: 450, Max: 540},
				types.MealLunch:     {Min: 540, Max: 630},
				types.MealDinner:    {Min: 540, Max: 630},
				types.MealSnack:     {Min: 90, Max: 180},
			},
		},
		{
			name:  "medium bracket",
			total: 2000,
			want: SlotBands{
				types.MealBreakfast: {Min: 500, Max: 600},
				types.MealLunch:     {Min: 600, Max: 700},
				types.MealDinner:    {Min: 600, Max: 700},
				types.MealSnack:     {Min: 100, Max: 200},
			},
		},
		{
			name:  "high bracket",
			total: 3000,
			want: SlotBands{
				types.MealBreakfast: {Min: 750, Max: 900},
				types.MealLunch:     {Min: 900, Max: 1050},
				types.MealDinner:    {Min: 900, Max: 1050},
				types.MealSnack:     {Min: 150, Max: 300},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalorieDistribution(tt.total)
			require.Len(t, got, 4)
			for slot, want := range tt.want {
				assert.InDelta(t, want.Min, got[slot].Min, 1e-9, "%s min", slot)
				assert.InDelta(t, want.Max, got[slot].Max, 1e-9, "%s max", slot)
			}
		})
	}
}

// The 1800-2399 and 2400+ brackets use the same percentages. This is
// existing behavior, kept as-is rather than inventing a separate
// high-calorie split.
func TestCalorieDistributionMediumAndHighBracketsMatch(t *testing.T) {
	medium := CalorieDistribution(2000)
	high := CalorieDistribution(2400)
	for _, slot := range types.Slots {
		assert.InDelta(t, medium[slot].Min/2000, high[slot].Min/2400, 1e-9, "%s min share", slot)
		assert.InDelta(t, medium[slot].Max/2000, high[slot].Max/2400, 1e-9, "%s max share", slot)
	}
}

func TestMacroDistribution(t *testing.T) {
	tests := []struct {
		goal string
		want MacroBands
	}{
		{"Weight loss", MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.20, 0.30}, Fat: Band{0.30, 0.40}}},
		{"I want to lose weight", MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.20, 0.30}, Fat: Band{0.30, 0.40}}},
		{"fat loss and muscle", MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.20, 0.30}, Fat: Band{0.30, 0.40}}},
		{"build MUSCLE", MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.40, 0.50}, Fat: Band{0.20, 0.30}}},
		{"strength", MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.40, 0.50}, Fat: Band{0.20, 0.30}}},
		{"weight gain", MacroBands{Protein: Band{0.30, 0.40}, Carbs: Band{0.40, 0.50}, Fat: Band{0.20, 0.30}}},
		{"heart health", MacroBands{Protein: Band{0.25, 0.35}, Carbs: Band{0.45, 0.55}, Fat: Band{0.20, 0.30}}},
		{"lower cholesterol", MacroBands{Protein: Band{0.25, 0.35}, Carbs: Band{0.45, 0.55}, Fat: Band{0.20, 0.30}}},
		{"maintenance", MacroBands{Protein: Band{0.25, 0.35}, Carbs: Band{0.40, 0.50}, Fat: Band{0.25, 0.35}}},
		{"", MacroBands{Protein: Band{0.25, 0.35}, Carbs: Band{0.40, 0.50}, Fat: Band{0.25, 0.35}}},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, MacroDistribution(tt.goal))
		})
	}
}

func TestMacroMidpointsForMuscleGain(t *testing.T) {
	mid := MacroDistribution("muscle gain").Midpoints()
	assert.InDelta(t, 0.35, mid.Protein, 1e-9)
	assert.InDelta(t, 0.45, mid.Carbs, 1e-9)
	assert.InDelta(t, 0.25, mid.Fat, 1e-9)
}

func TestBand(t *testing.T) {
	b := Band{Min: 10, Max: 20}
	assert.True(t, b.Contains(10))
	assert.True(t, b.Contains(20))
	assert.False(t, b.Contains(20.5))
	assert.Equal(t, 15.0, b.Mid())
}
