// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"sort"
	"strings"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// Rule priorities assigned by FromPreferences.
const (
	PriorityAllergy      = 10
	PriorityDiet         = 5
	PriorityCalorieRange = 4
	PriorityCooking      = 3
	PriorityMacroRatio   = 2
)

// Set is an ordered rule set, highest priority first.
type Set []Rule

// FromPreferences builds the rule set for a preference record. The result
// is deterministic: identical preferences yield identical sets.
//
// One calorie_range rule is emitted per meal slot into the same flat set.
// The rules are not scoped to a recipe's own meal type, so a recipe must
// fall inside every slot band to pass the medium tier. Callers that want
// per-slot bands filter each meal-type partition separately.
func FromPreferences(prefs types.Preferences) Set {
	var set Set

	if prefs.DietType != "" && prefs.DietType != types.DietNone {
		set = append(set, New(RequireDiet{Tag: strings.ToLower(string(prefs.DietType))}, PriorityDiet))
	}

	for _, allergy := range prefs.Allergies {
		set = append(set, New(ExcludeIngredient{Allergen: strings.ToLower(allergy)}, PriorityAllergy))
	}

	switch prefs.CookingPreference {
	case types.CookingCooked:
		set = append(set, New(CookingPreference{Target: CookTargetCooked}, PriorityCooking))
	case types.CookingNoCook:
		set = append(set, New(CookingPreference{Target: CookTargetNoCook}, PriorityCooking))
	}

	bands := CalorieDistribution(float64(prefs.Calories))
	for _, slot := range types.Slots {
		b := bands[slot]
		set = append(set, New(CalorieRange{Min: b.Min, Max: b.Max}, PriorityCalorieRange))
	}

	if prefs.Goal != "" {
		target := MacroDistribution(prefs.Goal).Midpoints()
		set = append(set, New(MacroRatio{Target: target}, PriorityMacroRatio))
	}

	sort.SliceStable(set, func(i, j int) bool {
		return set[i].priority > set[j].priority
	})
	return set
}
