// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/meal-engine/internal/mealplan"
	"github.com/pdiddy/meal-engine/internal/recipedb"
	"github.com/pdiddy/meal-engine/internal/rules"
	"github.com/pdiddy/meal-engine/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a daily or weekly meal plan",
	Long: `Plan filters the recipe database with your preferences, sorts the
survivors into breakfast, lunch, dinner and snack, and picks one recipe per
slot so the day's calories land as close to your target as possible.

With --week, each slot list is shuffled and spread over seven days. Use
--seed for a repeatable week. Use --save to keep the plan in the history.`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	prefs, err := preferencesFromFlags(cmd)
	if err != nil {
		return err
	}
	week, _ := cmd.Flags().GetBool("week")
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	perSlot, _ := cmd.Flags().GetBool("per-slot")
	if week {
		prefs.PlanType = types.PlanFullWeek
	}
	cfg := loadConfig().Planner
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	var candidates []types.Recipe
	if perSlot {
		candidates, err = loadSlotCandidates(ctx, store, cfg.CandidateLimit)
	} else {
		candidates, err = loadCandidates(ctx, store, recipedb.Query{Limit: cfg.CandidateLimit})
	}
	if err != nil {
		return err
	}

	filtered := rules.FilterRecipes(candidates, prefs, logger)
	logger.Debug("planning",
		zap.String("plan_type", string(prefs.PlanType)),
		zap.Int("candidates", len(candidates)),
		zap.Int("filtered", len(filtered)),
	)

	var (
		plan types.MealPlan
		ok   bool
	)
	if prefs.PlanType == types.PlanFullWeek {
		plan, ok = mealplan.PlanWeek(filtered, prefs, newRand(cfg.Seed))
	} else {
		plan, ok = mealplan.PlanDay(filtered, prefs)
	}
	if !ok {
		return mealplan.ErrNoRecipes
	}

	if save {
		plan, err = store.SavePlan(ctx, plan)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved plan %s\n", plan.ID)
	}
	return mealplan.Format(plan, format, cmd.OutOrStdout())
}

// loadSlotCandidates queries each meal slot concurrently so that every slot
// gets its own share of the candidate limit instead of competing for one
// listing. Recipes stored under other meal types are still available to
// the planner's backfill through the general listing.
func loadSlotCandidates(ctx context.Context, store *recipedb.Store, limit int) ([]types.Recipe, error) {
	lists := make([][]types.Recipe, len(types.Slots)+1)
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range types.Slots {
		g.Go(func() error {
			recipes, err := store.Recipes(gctx, recipedb.Query{Limit: limit, MealType: string(slot)})
			if err != nil {
				return fmt.Errorf("loading %s recipes: %w", slot, err)
			}
			lists[i] = recipes
			return nil
		})
	}
	g.Go(func() error {
		recipes, err := loadCandidates(gctx, store, recipedb.Query{Limit: limit})
		lists[len(types.Slots)] = recipes
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var merged []types.Recipe
	for _, list := range lists {
		for _, r := range list {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			merged = append(merged, r)
		}
	}
	return merged, nil
}

// newRand returns a seeded generator. A zero seed uses the current time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)))
}

func init() {
	addPreferenceFlags(planCmd)
	planCmd.Flags().Bool("week", false, "build a seven-day plan instead of a single day")
	planCmd.Flags().String("format", "markdown", "output format: markdown, json, yaml")
	planCmd.Flags().Bool("save", false, "save the plan to the history")
	planCmd.Flags().Int64("seed", 0, "seed for the weekly shuffle (0 uses the clock)")
	planCmd.Flags().Bool("per-slot", false, "load candidates for each meal slot separately")

	rootCmd.AddCommand(planCmd)
}
