// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/meal-engine/pkg/types"
)

const (
	// minHighTierSurvivors is the number of recipes that must pass the
	// high tier before the medium tier is attempted.
	minHighTierSurvivors = 5

	// minMediumTierSurvivors is the number of recipes the medium tier must
	// keep for its result to replace the high-tier result.
	minMediumTierSurvivors = 3
)

// Tier is a priority group of rules.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	}
	return "low"
}

// TierOf returns the tier for a priority: >= 5 high, 3-4 medium, <= 2 low.
func TierOf(priority int) Tier {
	switch {
	case priority >= 5:
		return TierHigh
	case priority > 2:
		return TierMedium
	}
	return TierLow
}

// Tiers splits the set into high, medium and low tiers, keeping the
// relative order of rules within each tier.
func (s Set) Tiers() (high, medium, low Set) {
	for _, r := range s {
		switch TierOf(r.priority) {
		case TierHigh:
			high = append(high, r)
		case TierMedium:
			medium = append(medium, r)
		default:
			low = append(low, r)
		}
	}
	return high, medium, low
}

// All reports whether rec satisfies every rule in the set.
func (s Set) All(rec Accessor) bool {
	for _, r := range s {
		if !r.Apply(rec) {
			return false
		}
	}
	return true
}

// Count returns the number of rules in the set that rec satisfies.
func (s Set) Count(rec Accessor) int {
	n := 0
	for _, r := range s {
		if r.Apply(rec) {
			n++
		}
	}
	return n
}

// Scored pairs a recipe with its expert score: the number of low-tier rules
// it satisfies.
type Scored[R Accessor] struct {
	Recipe      R
	ExpertScore int
}

// Filter runs the tiered filter over recipes and returns the survivors
// ordered by expert score, highest first, ties in input order.
//
// Every survivor passes every high-tier rule. The medium tier is skipped
// when fewer than five recipes pass the high tier, and its result is
// discarded when it keeps fewer than three. The low tier never removes a
// recipe. An empty result is a normal outcome. Filter does not modify the
// input slice.
func Filter[R Accessor](recipes []R, set Set, log *zap.Logger) []Scored[R] {
	if log == nil {
		log = zap.NewNop()
	}
	high, medium, low := set.Tiers()

	working := make([]R, 0, len(recipes))
	for _, rec := range recipes {
		if high.All(rec) {
			working = append(working, rec)
		}
	}

	if len(working) < minHighTierSurvivors {
		log.Warn("relaxing constraints: too few recipes match high-priority rules",
			zap.Int("matches", len(working)),
			zap.Int("required", minHighTierSurvivors),
		)
	} else {
		var narrowed []R
		for _, rec := range working {
			if medium.All(rec) {
				narrowed = append(narrowed, rec)
			}
		}
		if len(narrowed) >= minMediumTierSurvivors {
			working = narrowed
		} else {
			log.Debug("medium-priority rules too restrictive, keeping high-priority matches",
				zap.Int("medium_matches", len(narrowed)),
				zap.Int("high_matches", len(working)),
			)
		}
	}

	scored := make([]Scored[R], len(working))
	for i, rec := range working {
		scored[i] = Scored[R]{Recipe: rec, ExpertScore: low.Count(rec)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ExpertScore > scored[j].ExpertScore
	})

	log.Debug("filtered recipes",
		zap.Int("input", len(recipes)),
		zap.Int("output", len(scored)),
		zap.Int("high_rules", len(high)),
		zap.Int("medium_rules", len(medium)),
		zap.Int("low_rules", len(low)),
	)
	return scored
}

// FilterRecipes builds the rule set for prefs and filters recipes with it.
// The returned recipes are copies with ExpertScore set.
func FilterRecipes(recipes []types.Recipe, prefs types.Preferences, log *zap.Logger) []types.Recipe {
	scored := Filter(recipes, FromPreferences(prefs), log)
	out := make([]types.Recipe, len(scored))
	for i, s := range scored {
		out[i] = s.Recipe
		out[i].ExpertScore = s.ExpertScore
	}
	return out
}
