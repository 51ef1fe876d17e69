// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meal-engine/internal/mealplan"
	"github.com/pdiddy/meal-engine/internal/recipedb"
	"github.com/pdiddy/meal-engine/pkg/types"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Inspect and manage the recipe database",
}

// --- list subcommand ---

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, optionally filtered by diet, meal type and calories",
	RunE:  runRecipesList,
}

func runRecipesList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recipes, err := store.Recipes(cmd.Context(), queryFromFlags(cmd))
	if err != nil {
		return err
	}
	return writeRecipes(cmd, recipes)
}

// --- search subcommand ---

var recipesSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search recipe titles and ingredients",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecipesSearch,
}

func runRecipesSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recipes, err := store.Search(cmd.Context(), strings.Join(args, " "), queryFromFlags(cmd))
	if err != nil {
		return err
	}
	return writeRecipes(cmd, recipes)
}

// --- show subcommand ---

var recipesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe with its full ingredient list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesShow,
}

func runRecipesShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.ByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd.OutOrStdout(), r)
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// --- count subcommand ---

var recipesCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of stored recipes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

// --- export subcommand ---

var recipesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the recipe database to YAML, JSON or CSV",
	Long: `Export writes every stored recipe with its full ingredient list.
Output goes to stdout unless --output names a file.`,
	Args: cobra.NoArgs,
	RunE: runRecipesExport,
}

func runRecipesExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	ctx := cmd.Context()
	switch format {
	case "yaml", "":
		err = store.ExportYAML(ctx, w)
	case "json":
		err = store.ExportJSON(ctx, w)
	case "csv":
		err = store.ExportCSV(ctx, w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json or csv", format)
	}
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
	}
	return nil
}

// --- seed subcommand ---

var recipesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in sample recipes into an empty database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.SeedSamples(cmd.Context())
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Database already has recipes; nothing seeded.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d sample recipes.\n", n)
		return nil
	},
}

// --- shared helpers ---

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "maximum number of recipes (0 uses store.max_results)")
	cmd.Flags().String("diet", "", "match diet category or tag")
	cmd.Flags().String("meal", "", "match meal type")
	cmd.Flags().String("cooking-status", "", "cooked, uncooked or likely_uncooked")
	cmd.Flags().Float64("min-calories", 0, "minimum calories per serving")
	cmd.Flags().Float64("max-calories", 0, "maximum calories per serving")
	cmd.Flags().Bool("json", false, "output results as JSON")
}

func queryFromFlags(cmd *cobra.Command) recipedb.Query {
	var q recipedb.Query
	q.Limit, _ = cmd.Flags().GetInt("limit")
	q.DietType, _ = cmd.Flags().GetString("diet")
	q.MealType, _ = cmd.Flags().GetString("meal")
	status, _ := cmd.Flags().GetString("cooking-status")
	q.CookingStatus = types.CookingStatus(status)
	q.MinCalories, _ = cmd.Flags().GetFloat64("min-calories")
	q.MaxCalories, _ = cmd.Flags().GetFloat64("max-calories")
	return q
}

func writeRecipes(cmd *cobra.Command, recipes []types.Recipe) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd.OutOrStdout(), recipes)
	}
	mealplan.FormatRecipeTable(recipes, cmd.OutOrStdout())
	return nil
}

func init() {
	addQueryFlags(recipesListCmd)
	addQueryFlags(recipesSearchCmd)
	recipesShowCmd.Flags().Bool("json", false, "output as JSON instead of YAML")
	recipesExportCmd.Flags().String("format", "yaml", "export format: yaml, json, csv")
	recipesExportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")

	recipesCmd.AddCommand(recipesListCmd)
	recipesCmd.AddCommand(recipesSearchCmd)
	recipesCmd.AddCommand(recipesShowCmd)
	recipesCmd.AddCommand(recipesCountCmd)
	recipesCmd.AddCommand(recipesExportCmd)
	recipesCmd.AddCommand(recipesSeedCmd)

	rootCmd.AddCommand(recipesCmd)
}
