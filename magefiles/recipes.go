//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Recipes groups targets that fill the recipe database from Spoonacular.
type Recipes mg.Namespace

// Estimate prints the projected API usage of a full collection run.
func (Recipes) Estimate() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "collect", "--estimate")
}

// Collect runs one day's worth of collection. The API key comes from
// SPOONACULAR_API_KEY or a .env file.
func (Recipes) Collect() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "collect")
}

// Export writes the recipe database to data/recipes.csv.
func (Recipes) Export() error {
	mg.Deps(Build, Init)
	return sh.RunV(binPath, "recipes", "export", "--format", "csv", "--output", "data/recipes.csv")
}
