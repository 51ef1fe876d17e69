// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meal-engine/internal/mealplan"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show and delete saved meal plans",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		plans, err := store.ListPlans(cmd.Context(), limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(out, plans)
		}
		if len(plans) == 0 {
			fmt.Fprintln(out, "No saved plans.")
			return nil
		}
		fmt.Fprintf(out, "%-36s  %-20s  %-16s  %-18s  %8s  %8s\n",
			"ID", "Created", "Type", "Diet", "Target", "Average")
		fmt.Fprintln(out, strings.Repeat("-", 116))
		for _, p := range plans {
			fmt.Fprintf(out, "%-36s  %-20s  %-16s  %-18s  %8d  %8.0f\n",
				p.ID, p.CreatedAt.Local().Format("2006-01-02 15:04"), p.Type, p.DietType, p.Calories, p.AverageCalories)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		plan, err := store.GetPlan(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return mealplan.Format(plan, format, cmd.OutOrStdout())
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeletePlan(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum number of plans to list")
	historyListCmd.Flags().Bool("json", false, "output as JSON")
	historyShowCmd.Flags().String("format", "markdown", "output format: markdown, json, yaml")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)

	rootCmd.AddCommand(historyCmd)
}
