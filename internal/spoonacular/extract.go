// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spoonacular

import (
	"math"
	"strings"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// searchResponse is the complexSearch response body.
type searchResponse struct {
	Results      []apiRecipe `json:"results"`
	Offset       int         `json:"offset"`
	Number       int         `json:"number"`
	TotalResults int         `json:"totalResults"`
}

// apiRecipe captures the fields we need from a complexSearch result with
// addRecipeNutrition and fillIngredients enabled.
type apiRecipe struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Image               string          `json:"image"`
	SourceURL           string          `json:"sourceUrl"`
	ReadyInMinutes      int             `json:"readyInMinutes"`
	Servings            int             `json:"servings"`
	Summary             string          `json:"summary"`
	Diets               []string        `json:"diets"`
	DishTypes           []string        `json:"dishTypes"`
	Nutrition           *apiNutrition   `json:"nutrition"`
	ExtendedIngredients []apiIngredient `json:"extendedIngredients"`
}

type apiNutrition struct {
	Nutrients []apiNutrient `json:"nutrients"`
}

type apiNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type apiIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Diets lists the diet filters iterated during collection.
var Diets = []string{
	"vegetarian", "vegan", "gluten free", "ketogenic",
	"paleo", "whole30", "pescatarian", "dairy free",
}

// MealTypes lists the dish types iterated during collection.
var MealTypes = []string{
	"main course", "side dish", "dessert", "appetizer",
	"salad", "bread", "breakfast", "soup", "beverage", "sauce", "snack",
}

const defaultMealType = "main course"

var (
	noCookDishTypes = []string{"salad", "beverage", "drink", "snack"}
	noCookKeywords  = []string{
		"raw", "no-cook", "no cook", "uncooked", "salad",
		"smoothie", "shake", "overnight", "yogurt",
	}
)

// CookingStatus infers whether a recipe needs cooking from its dish
// types, its title and its preparation time, in that order.
func CookingStatus(title string, dishTypes []string, readyInMinutes int) types.CookingStatus {
	for _, dt := range dishTypes {
		dt = strings.ToLower(dt)
		for _, kw := range noCookDishTypes {
			if strings.Contains(dt, kw) {
				return types.StatusUncooked
			}
		}
	}
	lower := strings.ToLower(title)
	for _, kw := range noCookKeywords {
		if strings.Contains(lower, kw) {
			return types.StatusUncooked
		}
	}
	if readyInMinutes < 10 {
		return types.StatusLikelyUncooked
	}
	return types.StatusCooked
}

// NutritionTags derives tags from per-serving macros.
func NutritionTags(protein, carbs, fat, fiber float64) []string {
	var tags []string
	if protein > 25 {
		tags = append(tags, "high_protein")
	}
	if carbs < 15 {
		tags = append(tags, "low_carb")
	}
	if fat < 10 {
		tags = append(tags, "low_fat")
	}
	if fiber > 8 {
		tags = append(tags, "high_fiber")
	}
	return tags
}

// mealTypeOf returns the first dish type that is a known meal type.
func mealTypeOf(dishTypes []string) types.MealType {
	for _, dt := range dishTypes {
		dt = strings.ToLower(dt)
		for _, mt := range MealTypes {
			if dt == mt {
				return types.MealType(dt)
			}
		}
	}
	return defaultMealType
}

// toRecipe normalises an API result into a Recipe. Calories are rounded to
// whole numbers and macros to one decimal.
func toRecipe(ar apiRecipe) types.Recipe {
	var calories, protein, carbs, fat, fiber float64
	if ar.Nutrition != nil {
		for _, n := range ar.Nutrition.Nutrients {
			switch n.Name {
			case "Calories":
				calories = n.Amount
			case "Protein":
				protein = n.Amount
			case "Carbohydrates":
				carbs = n.Amount
			case "Fat":
				fat = n.Amount
			case "Fiber":
				fiber = n.Amount
			}
		}
	}

	r := types.Recipe{
		ID:             ar.ID,
		Name:           ar.Title,
		Image:          ar.Image,
		SourceURL:      ar.SourceURL,
		ReadyInMinutes: ar.ReadyInMinutes,
		Servings:       ar.Servings,
		Summary:        ar.Summary,
		Calories:       math.Round(calories),
		Protein:        round1(protein),
		Carbs:          round1(carbs),
		Fat:            round1(fat),
		Fiber:          round1(fiber),
		CookingStatus:  CookingStatus(ar.Title, ar.DishTypes, ar.ReadyInMinutes),
		Category:       strings.Join(ar.Diets, ","),
		MealType:       mealTypeOf(ar.DishTypes),
		DietTags:       strings.Join(NutritionTags(protein, carbs, fat, fiber), ","),
	}

	names := make([]string, 0, len(ar.ExtendedIngredients))
	for _, ing := range ar.ExtendedIngredients {
		r.IngredientList = append(r.IngredientList, types.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit})
		if ing.Name != "" {
			names = append(names, ing.Name)
		}
	}
	r.Ingredients = strings.Join(names, ",")
	return r
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
