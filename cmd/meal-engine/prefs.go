// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// addPreferenceFlags registers the flags shared by recommend and plan.
func addPreferenceFlags(cmd *cobra.Command) {
	cmd.Flags().String("prefs", "", "YAML file with preferences (flags override its values)")
	cmd.Flags().String("diet", "", "diet type: vegetarian, vegan, keto, gluten-free, paleo, whole30, pescatarian, dairy-free")
	cmd.Flags().StringSlice("allergies", nil, "allergens to exclude (comma-separated)")
	cmd.Flags().Int("calories", 2000, "daily calorie target (1000-3000)")
	cmd.Flags().String("goal", "", "free-text nutrition goal, e.g. \"weight loss\" or \"muscle gain\"")
	cmd.Flags().String("cooking", "any", "cooking preference: any, cooked, no-cook")
}

// preferencesFromFlags loads the --prefs file, if any, and applies the flags
// the user set on top of it.
func preferencesFromFlags(cmd *cobra.Command) (types.Preferences, error) {
	prefs := types.DefaultPreferences()

	if path, _ := cmd.Flags().GetString("prefs"); path != "" {
		p, err := readPreferences(path)
		if err != nil {
			return prefs, err
		}
		prefs = p
	}

	flags := cmd.Flags()
	if flags.Changed("diet") {
		s, _ := flags.GetString("diet")
		d, err := types.ParseDietType(s)
		if err != nil {
			return prefs, err
		}
		prefs.DietType = d
	}
	if flags.Changed("allergies") {
		prefs.Allergies, _ = flags.GetStringSlice("allergies")
	}
	if flags.Changed("calories") || prefs.Calories == 0 {
		prefs.Calories, _ = flags.GetInt("calories")
	}
	if flags.Changed("goal") {
		prefs.Goal, _ = flags.GetString("goal")
	}
	if flags.Changed("cooking") {
		s, _ := flags.GetString("cooking")
		c, err := types.ParseCookingPreference(s)
		if err != nil {
			return prefs, err
		}
		prefs.CookingPreference = c
	}

	prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		return prefs, fmt.Errorf("invalid preferences: %w", err)
	}
	return prefs, nil
}

// readPreferences parses a preferences file. Diet and cooking values accept
// the same spellings as the flags.
func readPreferences(path string) (types.Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Preferences{}, fmt.Errorf("reading preferences: %w", err)
	}
	var raw types.Preferences
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return types.Preferences{}, fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	if raw.DietType, err = types.ParseDietType(string(raw.DietType)); err != nil {
		return types.Preferences{}, fmt.Errorf("preferences %s: %w", path, err)
	}
	if raw.CookingPreference, err = types.ParseCookingPreference(string(raw.CookingPreference)); err != nil {
		return types.Preferences{}, fmt.Errorf("preferences %s: %w", path, err)
	}
	return raw, nil
}
