// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meal-engine CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/meal-engine/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the meal-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "meal-engine",
	Short: "Personalized meal recommendations and meal plans",
	Long: `meal-engine recommends recipes and builds meal plans from dietary
restrictions, allergies, a calorie target, a cooking preference, and a
nutrition goal.

Recipes live in a local SQLite database. Seed it with the built-in samples
(recipes seed) or collect recipes from the Spoonacular API (collect). The
recommend and plan commands filter the database with a tiered rule engine
and assemble one recipe per meal slot to hit the calorie target.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(loadConfig().Log)
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./meal-engine.yaml or ~/.config/meal-engine/meal-engine.yaml)")
	pf.String("db", defaultDBPath, "recipe database path")
	pf.String("cache-dir", defaultCacheDir, "directory for cached API responses and the quota file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	viper.BindPFlag("db", pf.Lookup("db"))
	viper.BindPFlag("cache_dir", pf.Lookup("cache-dir"))
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
}

func initConfig() {
	// A missing .env file is normal; the API key may come from the
	// environment or the config file instead.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "meal-engine: reading .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meal-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meal-engine"))
		}
	}

	viper.SetEnvPrefix("MEAL_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("spoonacular.api_key", "MEAL_ENGINE_SPOONACULAR_API_KEY", "SPOONACULAR_API_KEY")
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "meal-engine: reading config:", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
