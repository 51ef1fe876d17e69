// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipedb

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// Samples returns the built-in sample recipes used when no collected
// recipes are available.
func Samples() []types.Recipe {
	return []types.Recipe{
		{
			ID: 1, Name: "Greek Yogurt Parfait with Berries",
			Calories: 320, Protein: 18, Carbs: 42, Fat: 8, Fiber: 5,
			Ingredients:   "Greek yogurt, mixed berries, honey, granola",
			CookingStatus: types.StatusUncooked, Category: "vegetarian",
			DietTags: "vegetarian,gluten-free,high-protein", MealType: types.MealBreakfast,
			Image: "https://spoonacular.com/recipeImages/715497-312x231.jpg",
		},
		{
			ID: 2, Name: "Grilled Chicken Salad with Avocado",
			Calories: 450, Protein: 35, Carbs: 12, Fat: 28, Fiber: 8,
			Ingredients:   "Chicken breast, mixed greens, avocado, cherry tomatoes, olive oil, lemon juice",
			CookingStatus: types.StatusCooked, Category: "gluten-free",
			DietTags: "gluten-free,dairy-free,high-protein,low-carb", MealType: types.MealLunch,
			Image: "https://spoonacular.com/recipeImages/642585-312x231.jpg",
		},
		{
			ID: 3, Name: "Salmon with Roasted Vegetables",
			Calories: 520, Protein: 40, Carbs: 18, Fat: 30, Fiber: 6,
			Ingredients:   "Salmon fillet, broccoli, carrots, bell peppers, olive oil, garlic, lemon",
			CookingStatus: types.StatusCooked, Category: "pescatarian",
			DietTags: "pescatarian,gluten-free,dairy-free,high-protein", MealType: types.MealDinner,
			Image: "https://spoonacular.com/recipeImages/659135-312x231.jpg",
		},
		{
			ID: 4, Name: "Keto Cauliflower Crust Pizza",
			Calories: 480, Protein: 25, Carbs: 10, Fat: 38, Fiber: 4,
			Ingredients:   "Cauliflower, mozzarella cheese, eggs, tomato sauce, pepperoni, bell peppers, olives",
			CookingStatus: types.StatusCooked, Category: "keto",
			DietTags: "keto,gluten-free,low-carb", MealType: types.MealDinner,
			Image: "https://spoonacular.com/recipeImages/655235-312x231.jpg",
		},
		{
			ID: 5, Name: "Vegan Buddha Bowl",
			Calories: 420, Protein: 15, Carbs: 60, Fat: 16, Fiber: 12,
			Ingredients:   "Quinoa, chickpeas, avocado, sweet potato, kale, tahini, lemon juice, garlic",
			CookingStatus: types.StatusCooked, Category: "vegan",
			DietTags: "vegan,vegetarian,gluten-free,dairy-free,high-fiber", MealType: types.MealLunch,
			Image: "https://spoonacular.com/recipeImages/716627-312x231.jpg",
		},
		{
			ID: 6, Name: "Paleo Beef and Vegetable Stir Fry",
			Calories: 490, Protein: 32, Carbs: 20, Fat: 30, Fiber: 6,
			Ingredients:   "Grass-fed beef strips, broccoli, carrots, bell peppers, coconut aminos, ginger, garlic",
			CookingStatus: types.StatusCooked, Category: "paleo",
			DietTags: "paleo,gluten-free,dairy-free,high-protein", MealType: types.MealDinner,
			Image: "https://spoonacular.com/recipeImages/633942-312x231.jpg",
		},
		{
			ID: 7, Name: "Overnight Oats with Chia Seeds",
			Calories: 350, Protein: 12, Carbs: 45, Fat: 14, Fiber: 9,
			Ingredients:   "Rolled oats, chia seeds, almond milk, maple syrup, cinnamon, berries, nuts",
			CookingStatus: types.StatusUncooked, Category: "vegetarian",
			DietTags: "vegetarian,high-fiber", MealType: types.MealBreakfast,
			Image: "https://spoonacular.com/recipeImages/658509-312x231.jpg",
		},
		{
			ID: 8, Name: "Mediterranean Chickpea Salad",
			Calories: 380, Protein: 15, Carbs: 40, Fat: 18, Fiber: 11,
			Ingredients:   "Chickpeas, cucumber, cherry tomatoes, red onion, feta cheese, olive oil, lemon juice, herbs",
			CookingStatus: types.StatusUncooked, Category: "vegetarian",
			DietTags: "vegetarian,high-fiber", MealType: types.MealLunch,
			Image: "https://spoonacular.com/recipeImages/716195-312x231.jpg",
		},
		{
			ID: 9, Name: "Turkey and Vegetable Stuffed Bell Peppers",
			Calories: 410, Protein: 30, Carbs: 25, Fat: 22, Fiber: 5,
			Ingredients:   "Bell peppers, ground turkey, onion, garlic, zucchini, tomatoes, spices, cheese",
			CookingStatus: types.StatusCooked, Category: "gluten-free",
			DietTags: "gluten-free,high-protein", MealType: types.MealDinner,
			Image: "https://spoonacular.com/recipeImages/664090-312x231.jpg",
		},
		{
			ID: 10, Name: "Whole30 Chicken and Sweet Potato Hash",
			Calories: 440, Protein: 28, Carbs: 35, Fat: 22, Fiber: 6,
			Ingredients:   "Chicken breast, sweet potatoes, bell peppers, onion, eggs, avocado, spices",
			CookingStatus: types.StatusCooked, Category: "whole30",
			DietTags: "whole30,paleo,gluten-free,dairy-free", MealType: types.MealBreakfast,
			Image: "https://spoonacular.com/recipeImages/715523-312x231.jpg",
		},
	}
}

// SeedSamples stores the sample recipes when the database is empty. It
// returns the number of recipes written, zero if the database already had
// recipes.
func (s *Store) SeedSamples(ctx context.Context) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Debug("skipping sample seed", zap.Int("existing", n))
		return 0, nil
	}
	samples := Samples()
	if err := s.Upsert(ctx, samples...); err != nil {
		return 0, fmt.Errorf("seeding samples: %w", err)
	}
	s.log.Info("seeded sample recipes", zap.Int("count", len(samples)))
	return len(samples), nil
}
