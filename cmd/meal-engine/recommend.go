// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meal-engine/internal/mealplan"
	"github.com/pdiddy/meal-engine/internal/recipedb"
	"github.com/pdiddy/meal-engine/internal/rules"
	"github.com/pdiddy/meal-engine/pkg/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List recipes that fit your preferences, best matches first",
	Long: `Recommend filters the recipe database with rules built from your
preferences. Allergy and diet rules are never relaxed; the calorie ceiling and
cooking preference are dropped when too few recipes remain; calorie ranges,
protein and macro balance only affect ranking.

With --input, recommend filters a JSON or YAML file of recipe records
instead of the database and prints the survivors with their expert_score.`,
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	prefs, err := preferencesFromFlags(cmd)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		records, err := readRecords(input)
		if err != nil {
			return err
		}
		scored := rules.Filter(records, rules.FromPreferences(prefs), logger)
		result := make([]types.Record, 0, len(scored))
		for _, s := range scored {
			rec := make(types.Record, len(s.Recipe)+1)
			for k, v := range s.Recipe {
				rec[k] = v
			}
			rec["expert_score"] = s.ExpertScore
			result = append(result, rec)
		}
		return writeJSON(out, head(result, limit))
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	candidates, err := loadCandidates(cmd.Context(), store, recipedb.Query{Limit: loadConfig().Planner.CandidateLimit})
	if err != nil {
		return err
	}
	recipes := head(rules.FilterRecipes(candidates, prefs, logger), limit)

	if jsonOutput {
		return writeJSON(out, recipes)
	}
	mealplan.FormatRecipeTable(recipes, out)
	return nil
}

// readRecords loads a list of loosely typed recipe records. Files ending in
// .yaml or .yml are parsed as YAML, anything else as JSON.
func readRecords(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	var records []types.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing records %s: %w", path, err)
	}
	return records, nil
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	addPreferenceFlags(recommendCmd)
	recommendCmd.Flags().String("input", "", "filter recipe records from a JSON or YAML file instead of the database")
	recommendCmd.Flags().Int("limit", 20, "maximum number of recipes to show (0 for all)")
	recommendCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(recommendCmd)
}
