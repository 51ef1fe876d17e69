// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meal-engine/internal/recipedb"
	"github.com/pdiddy/meal-engine/pkg/types"
)

func prefsCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addPreferenceFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPreferencesFromFlagsDefaults(t *testing.T) {
	prefs, err := preferencesFromFlags(prefsCommand(t))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPreferences().DietType, prefs.DietType)
	assert.Equal(t, 2000, prefs.Calories)
	assert.Equal(t, types.CookingAny, prefs.CookingPreference)
	assert.Empty(t, prefs.Allergies)
}

func TestPreferencesFromFlags(t *testing.T) {
	prefs, err := preferencesFromFlags(prefsCommand(t,
		"--diet", "vegan",
		"--allergies", "Nuts,None,Soy",
		"--calories", "1800",
		"--goal", "muscle gain",
		"--cooking", "no-cook",
	))
	require.NoError(t, err)
	assert.Equal(t, types.DietVegan, prefs.DietType)
	assert.Equal(t, []string{"Nuts", "Soy"}, prefs.Allergies)
	assert.Equal(t, 1800, prefs.Calories)
	assert.Equal(t, "muscle gain", prefs.Goal)
	assert.Equal(t, types.CookingNoCook, prefs.CookingPreference)
}

func TestPreferencesFromFlagsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown diet", []string{"--diet", "carnivore"}},
		{"unknown cooking", []string{"--cooking", "microwave"}},
		{"calories too low", []string{"--calories", "900"}},
		{"calories too high", []string{"--calories", "3100"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := preferencesFromFlags(prefsCommand(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestPreferencesFileWithOverrides(t *testing.T) {
	path := writeFile(t, "prefs.yaml", `diet_type: keto
allergies: [Dairy, Eggs]
calories: 2400
goal: weight loss
cooking_preference: cooked
`)
	prefs, err := preferencesFromFlags(prefsCommand(t, "--prefs", path, "--calories", "2200"))
	require.NoError(t, err)
	assert.Equal(t, types.DietKeto, prefs.DietType)
	assert.Equal(t, []string{"Dairy", "Eggs"}, prefs.Allergies)
	assert.Equal(t, 2200, prefs.Calories)
	assert.Equal(t, "weight loss", prefs.Goal)
	assert.Equal(t, types.CookingCooked, prefs.CookingPreference)
}

func TestReadRecords(t *testing.T) {
	jsonPath := writeFile(t, "recipes.json", `[{"name": "Oats", "calories": "350"}, {"name": "Soup", "calories": 200}]`)
	records, err := readRecords(jsonPath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "350", records[0]["calories"])

	yamlPath := writeFile(t, "recipes.yml", "- name: Oats\n  calories: 350\n")
	records, err = readRecords(yamlPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 350, records[0]["calories"])

	_, err = readRecords(writeFile(t, "bad.json", "{"))
	assert.Error(t, err)
}

func TestHead(t *testing.T) {
	assert.Equal(t, []int{1, 2}, head([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, head([]int{1, 2, 3}, 0))
	assert.Equal(t, []int{1}, head([]int{1}, 5))
}

func TestNewRandSeeded(t *testing.T) {
	a, b := newRand(42), newRand(42)
	for range 5 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestLoadCandidatesFallsBackToSamples(t *testing.T) {
	store, err := recipedb.NewStore(types.StoreConfig{Path: filepath.Join(t.TempDir(), "recipes.db")}, nil)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	recipes, err := loadCandidates(ctx, store, recipedb.Query{})
	require.NoError(t, err)
	assert.Len(t, recipes, len(recipedb.Samples()))

	_, err = store.SeedSamples(ctx)
	require.NoError(t, err)
	recipes, err = loadCandidates(ctx, store, recipedb.Query{MealType: "no-such-meal"})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestLoadSlotCandidatesDedupes(t *testing.T) {
	store, err := recipedb.NewStore(types.StoreConfig{Path: filepath.Join(t.TempDir(), "recipes.db")}, nil)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()
	_, err = store.SeedSamples(ctx)
	require.NoError(t, err)

	recipes, err := loadSlotCandidates(ctx, store, 100)
	require.NoError(t, err)
	assert.Len(t, recipes, len(recipedb.Samples()))

	seen := map[int64]bool{}
	for _, r := range recipes {
		assert.False(t, seen[r.ID], "duplicate recipe %d", r.ID)
		seen[r.ID] = true
	}
}
