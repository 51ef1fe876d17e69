// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meal-engine/internal/secrets"
	"github.com/pdiddy/meal-engine/internal/spoonacular"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect recipes from the Spoonacular API into the database",
	Long: `Collect pages through Spoonacular search results for each diet and
meal type and stores new recipes in the database. Responses are cached in
--cache-dir, so an interrupted run resumes without spending API calls on
pages it already fetched.

Calls are counted against a daily budget (spoonacular.max_daily_calls). When
the budget is spent, collection stops and can be resumed the next day.

The API key is read from spoonacular.api_key, MEAL_ENGINE_SPOONACULAR_API_KEY,
SPOONACULAR_API_KEY (a .env file in the working directory is loaded), or the
file .secrets/spoonacular-api-key.`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg := loadConfig().Collect
	keys, err := secrets.Load(secrets.DefaultDir, logger)
	if err != nil {
		return err
	}
	cfg.APIKey = keys.Or(cfg.APIKey, secrets.SpoonacularKey)
	target, _ := cmd.Flags().GetInt("target")
	diets, _ := cmd.Flags().GetStringSlice("diets")
	mealTypes, _ := cmd.Flags().GetStringSlice("meal-types")
	out := cmd.OutOrStdout()

	if estimate, _ := cmd.Flags().GetBool("estimate"); estimate {
		minTarget, _ := cmd.Flags().GetInt("min-target")
		n := len(diets)
		if n == 0 {
			n = len(spoonacular.Diets)
		}
		e := spoonacular.EstimateUsage(n, minTarget, target, cfg.BatchSize, cfg.MaxDailyCalls)
		fmt.Fprintf(out, "Target: %d to %d recipes (%d to %d per diet)\n", e.MinRecipes, e.MaxRecipes, minTarget, target)
		fmt.Fprintf(out, "Estimated API calls: %d to %d\n", e.MinCalls, e.MaxCalls)
		fmt.Fprintf(out, "At %d calls per day: %d to %d days\n", cfg.MaxDailyCalls, e.MinDays, e.MaxDays)
		return nil
	}

	client, err := spoonacular.NewClient(cfg, logger)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(out, "Starting collection with %d API calls used today\n", client.Quota().Used())
	sum, err := spoonacular.NewCollector(client, store, logger).Collect(cmd.Context(), spoonacular.Options{
		Target:    target,
		Diets:     diets,
		MealTypes: mealTypes,
	})
	printSummary(cmd, sum)
	if err != nil {
		return err
	}
	if sum.QuotaReached {
		fmt.Fprintln(out, "Daily API limit reached. Run collect again tomorrow to continue.")
	}
	return nil
}

func printSummary(cmd *cobra.Command, sum spoonacular.Summary) {
	out := cmd.OutOrStdout()
	diets := make([]string, 0, len(sum.PerDiet))
	for d := range sum.PerDiet {
		diets = append(diets, d)
	}
	sort.Strings(diets)
	for _, d := range diets {
		fmt.Fprintf(out, "  %-14s %d\n", d, sum.PerDiet[d])
	}
	fmt.Fprintf(out, "Collected %d recipes (%d API calls, %d cached pages)\n", sum.Collected, sum.APICalls, sum.CacheHits)
}

func init() {
	collectCmd.Flags().Int("target", 200, "recipes to collect per diet")
	collectCmd.Flags().Int("min-target", 20, "minimum recipes per diet, used by --estimate")
	collectCmd.Flags().StringSlice("diets", nil, "diets to collect (default: all supported diets)")
	collectCmd.Flags().StringSlice("meal-types", nil, "meal types to collect (default: all supported meal types)")
	collectCmd.Flags().Bool("estimate", false, "print the projected API usage and exit")

	rootCmd.AddCommand(collectCmd)
}
