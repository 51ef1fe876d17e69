// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules evaluates recipes against prioritized food rules built from
// user preferences. Rules fall into three tiers: high-priority rules
// (allergies, diet) are a hard gate, medium-priority rules (cooking
// preference, calorie bands) are dropped when they leave too few recipes,
// and low-priority rules (macro ratio) only rank.
package rules

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies a rule variant.
type Kind int

const (
	KindExcludeIngredient Kind = iota
	KindRequireDiet
	KindMaxCalories
	KindMinProtein
	KindCookingPreference
	KindCalorieRange
	KindMacroRatio
)

func (k Kind) String() string {
	switch k {
	case KindExcludeIngredient:
		return "exclude_ingredient"
	case KindRequireDiet:
		return "require_diet"
	case KindMaxCalories:
		return "max_calories"
	case KindMinProtein:
		return "min_protein"
	case KindCookingPreference:
		return "cooking_preference"
	case KindCalorieRange:
		return "calorie_range"
	case KindMacroRatio:
		return "macro_ratio"
	}
	return "unknown"
}

// Condition is the kind-specific payload of a rule. The set of conditions is
// closed: only the types in this package implement it.
type Condition interface {
	Kind() Kind
	condition()
}

// ExcludeIngredient rejects recipes whose ingredient text contains Allergen
// (case-insensitive substring).
type ExcludeIngredient struct{ Allergen string }

// RequireDiet accepts recipes whose diet tags or category contain Tag.
type RequireDiet struct{ Tag string }

// MaxCalories accepts recipes with calories at or below Limit.
type MaxCalories struct{ Limit float64 }

// MinProtein accepts recipes with protein at or above Limit grams.
type MinProtein struct{ Limit float64 }

// CookTarget is the cooking status a CookingPreference rule asks for.
type CookTarget string

const (
	CookTargetCooked CookTarget = "cooked"
	CookTargetNoCook CookTarget = "no-cook"
)

// CookingPreference matches the recipe's cooking status exactly:
// "cooked" needs cooking_status "cooked", "no-cook" needs "uncooked".
// "likely_uncooked" satisfies neither.
type CookingPreference struct{ Target CookTarget }

// CalorieRange accepts recipes with Min <= calories <= Max.
type CalorieRange struct{ Min, Max float64 }

// Macros holds a fraction of total calories per macronutrient.
type Macros struct {
	Protein float64 `json:"protein" yaml:"protein"`
	Carbs   float64 `json:"carbs" yaml:"carbs"`
	Fat     float64 `json:"fat" yaml:"fat"`
}

// MacroRatio accepts recipes whose calorie split across protein, carbs and
// fat is within MacroTolerance of Target for every macronutrient.
type MacroRatio struct{ Target Macros }

func (ExcludeIngredient) Kind() Kind { return KindExcludeIngredient }
func (RequireDiet) Kind() Kind       { return KindRequireDiet }
func (MaxCalories) Kind() Kind       { return KindMaxCalories }
func (MinProtein) Kind() Kind        { return KindMinProtein }
func (CookingPreference) Kind() Kind { return KindCookingPreference }
func (CalorieRange) Kind() Kind      { return KindCalorieRange }
func (MacroRatio) Kind() Kind        { return KindMacroRatio }

func (ExcludeIngredient) condition() {}
func (RequireDiet) condition()       {}
func (MaxCalories) condition()       {}
func (MinProtein) condition()        {}
func (CookingPreference) condition() {}
func (CalorieRange) condition()      {}
func (MacroRatio) condition()        {}

// MacroTolerance is the absolute deviation allowed per macronutrient fraction.
const MacroTolerance = 0.10

// Calories per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Rule is an immutable predicate over one recipe. Higher priority is more
// important.
type Rule struct {
	cond     Condition
	priority int
}

// New returns a rule with the given condition and priority.
func New(cond Condition, priority int) Rule {
	return Rule{cond: cond, priority: priority}
}

// Condition returns the rule's payload.
func (r Rule) Condition() Condition { return r.cond }

// Priority returns the rule's priority.
func (r Rule) Priority() int { return r.priority }

// Kind returns the kind of the rule's condition.
func (r Rule) Kind() Kind {
	if r.cond == nil {
		return -1
	}
	return r.cond.Kind()
}

func (r Rule) String() string {
	return fmt.Sprintf("%s(%v, priority=%d)", r.Kind(), r.cond, r.priority)
}

// Apply reports whether the recipe satisfies the rule. Missing or malformed
// data never panics: numeric rules fail closed, the ingredient exclusion
// passes when there is no ingredient text to inspect.
func (r Rule) Apply(rec Accessor) bool {
	switch c := r.cond.(type) {
	case ExcludeIngredient:
		ingredients, ok := Text(rec, "ingredients")
		if !ok {
			return true
		}
		return !strings.Contains(strings.ToLower(ingredients), strings.ToLower(c.Allergen))

	case RequireDiet:
		tag := strings.ToLower(c.Tag)
		tags, tagsOK := Text(rec, "diet_tags")
		category, catOK := Text(rec, "category")
		if tagsOK && strings.Contains(strings.ToLower(tags), tag) {
			return true
		}
		if catOK && strings.Contains(strings.ToLower(category), tag) {
			return true
		}
		return false

	case MaxCalories:
		calories, ok := Number(rec, "calories")
		return ok && calories <= c.Limit

	case MinProtein:
		protein, ok := Number(rec, "protein")
		return ok && protein >= c.Limit

	case CookingPreference:
		status, _ := Text(rec, "cooking_status")
		switch c.Target {
		case CookTargetCooked:
			return status == "cooked"
		case CookTargetNoCook:
			return status == "uncooked"
		}
		return true

	case CalorieRange:
		calories, ok := Number(rec, "calories")
		return ok && c.Min <= calories && calories <= c.Max

	case MacroRatio:
		return macroRatioMatches(rec, c.Target)
	}

	// Rules only ever narrow; a rule without a condition vetoes nothing.
	return true
}

func macroRatioMatches(rec Accessor, target Macros) bool {
	protein, pOK := Number(rec, "protein")
	carbs, cOK := Number(rec, "carbs")
	fat, fOK := Number(rec, "fat")
	if !pOK || !cOK || !fOK {
		return false
	}

	proteinKcal := protein * kcalPerGramProtein
	carbsKcal := carbs * kcalPerGramCarbs
	fatKcal := fat * kcalPerGramFat
	total := proteinKcal + carbsKcal + fatKcal
	if total == 0 {
		return false
	}

	actual := Macros{
		Protein: proteinKcal / total,
		Carbs:   carbsKcal / total,
		Fat:     fatKcal / total,
	}
	return math.Abs(actual.Protein-target.Protein) <= MacroTolerance &&
		math.Abs(actual.Carbs-target.Carbs) <= MacroTolerance &&
		math.Abs(actual.Fat-target.Fat) <= MacroTolerance
}
