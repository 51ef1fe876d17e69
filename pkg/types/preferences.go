// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// DietType is the diet a user follows. DietNone means no diet rule applies.
type DietType string

const (
	DietNone        DietType = "No restrictions"
	DietVegetarian  DietType = "Vegetarian"
	DietVegan       DietType = "Vegan"
	DietKeto        DietType = "Keto"
	DietGlutenFree  DietType = "Gluten-free"
	DietPaleo       DietType = "Paleo"
	DietWhole30     DietType = "Whole30"
	DietPescatarian DietType = "Pescatarian"
	DietDairyFree   DietType = "Dairy-free"
)

// DietTypes lists the supported diet types in display order.
var DietTypes = []DietType{
	DietNone, DietVegetarian, DietVegan, DietKeto, DietGlutenFree,
	DietPaleo, DietWhole30, DietPescatarian, DietDairyFree,
}

// CookingPreference is the user's cooking-effort preference.
type CookingPreference string

const (
	CookingAny    CookingPreference = "Any"
	CookingCooked CookingPreference = "Cooked meals"
	CookingNoCook CookingPreference = "No-cook/quick meals"
)

// CookingPreferences lists the supported cooking preferences.
var CookingPreferences = []CookingPreference{CookingAny, CookingCooked, CookingNoCook}

// PlanType selects a single-day or a weekly meal plan.
type PlanType string

const (
	PlanSingleDay PlanType = "Single Day Plan"
	PlanFullWeek  PlanType = "Full Week Plan"
)

// Allergens lists the allergens offered to users. Any string is accepted.
var Allergens = []string{"Nuts", "Dairy", "Shellfish", "Eggs", "Soy", "Wheat", "Fish", "Gluten"}

const (
	MinCalorieTarget = 1000
	MaxCalorieTarget = 3000
)

// Preferences is the user preference record a recommendation is built from.
type Preferences struct {
	DietType          DietType          `json:"diet_type" yaml:"diet_type"`
	Allergies         []string          `json:"allergies" yaml:"allergies"`
	Calories          int               `json:"calories" yaml:"calories"`
	Goal              string            `json:"goal" yaml:"goal"`
	CookingPreference CookingPreference `json:"cooking_preference" yaml:"cooking_preference"`
	PlanType          PlanType          `json:"plan_type" yaml:"plan_type"`
}

// DefaultPreferences returns the preferences used when nothing is specified.
func DefaultPreferences() Preferences {
	return Preferences{
		DietType:          DietNone,
		Calories:          2000,
		CookingPreference: CookingAny,
		PlanType:          PlanSingleDay,
	}
}

// Normalize fills empty enum fields with defaults and drops blank and
// "None" allergy entries.
func (p *Preferences) Normalize() {
	if p.DietType == "" {
		p.DietType = DietNone
	}
	if p.CookingPreference == "" {
		p.CookingPreference = CookingAny
	}
	if p.PlanType == "" {
		p.PlanType = PlanSingleDay
	}
	allergies := p.Allergies[:0:0]
	for _, a := range p.Allergies {
		a = strings.TrimSpace(a)
		if a == "" || strings.EqualFold(a, "none") {
			continue
		}
		allergies = append(allergies, a)
	}
	p.Allergies = allergies
}

// Validate checks the enum fields and the calorie target range.
func (p Preferences) Validate() error {
	if !containsDiet(p.DietType) {
		return fmt.Errorf("unknown diet type %q", p.DietType)
	}
	switch p.CookingPreference {
	case CookingAny, CookingCooked, CookingNoCook:
	default:
		return fmt.Errorf("unknown cooking preference %q", p.CookingPreference)
	}
	switch p.PlanType {
	case PlanSingleDay, PlanFullWeek:
	default:
		return fmt.Errorf("unknown plan type %q", p.PlanType)
	}
	if p.Calories < MinCalorieTarget || p.Calories > MaxCalorieTarget {
		return fmt.Errorf("calorie target %d outside %d-%d", p.Calories, MinCalorieTarget, MaxCalorieTarget)
	}
	return nil
}

func containsDiet(d DietType) bool {
	for _, known := range DietTypes {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDietType matches s case-insensitively against the known diet types.
func ParseDietType(s string) (DietType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DietNone, nil
	}
	for _, d := range DietTypes {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	if strings.EqualFold(s, "none") {
		return DietNone, nil
	}
	return "", fmt.Errorf("unknown diet type %q", s)
}

// ParseCookingPreference accepts the display value or the short forms
// "any", "cooked" and "no-cook".
func ParseCookingPreference(s string) (CookingPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return CookingAny, nil
	case "cooked", strings.ToLower(string(CookingCooked)):
		return CookingCooked, nil
	case "no-cook", "nocook", "quick", strings.ToLower(string(CookingNoCook)):
		return CookingNoCook, nil
	}
	return "", fmt.Errorf("unknown cooking preference %q", s)
}
