// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipedb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/meal-engine/pkg/types"
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// PlanSummary is one row of the plan history.
type PlanSummary struct {
	ID              string         `json:"id" yaml:"id"`
	CreatedAt       time.Time      `json:"created_at" yaml:"created_at"`
	Type            types.PlanType `json:"plan_type" yaml:"plan_type"`
	DietType        types.DietType `json:"diet_type" yaml:"diet_type"`
	Calories        int            `json:"calories" yaml:"calories"`
	AverageCalories float64        `json:"average_calories" yaml:"average_calories"`
	Days            int            `json:"days" yaml:"days"`
}

// SavePlan stores plan in the history. It assigns a new ID when plan.ID is
// empty and a creation time when plan.CreatedAt is zero, and returns the
// stored plan.
func (s *Store) SavePlan(ctx context.Context, plan types.MealPlan) (types.MealPlan, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	body, err := json.Marshal(plan)
	if err != nil {
		return plan, fmt.Errorf("marshaling plan: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO plans (id, created_at, plan_type, diet_type, calories, average_calories, days, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			created_at=excluded.created_at, plan_type=excluded.plan_type,
			diet_type=excluded.diet_type, calories=excluded.calories,
			average_calories=excluded.average_calories, days=excluded.days,
			body=excluded.body`,
		plan.ID, plan.CreatedAt.UTC().Format(timeLayout), string(plan.Type),
		string(plan.Prefs.DietType), plan.Prefs.Calories, plan.AverageCalories,
		len(plan.Days), string(body),
	)
	if err != nil {
		return plan, fmt.Errorf("saving plan: %w", err)
	}
	return plan, nil
}

// ListPlans returns saved plans, newest first. A limit of zero uses the
// store default.
func (s *Store) ListPlans(ctx context.Context, limit int) ([]PlanSummary, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, plan_type, COALESCE(diet_type, ''), COALESCE(calories, 0),
			COALESCE(average_calories, 0), COALESCE(days, 0)
		 FROM plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var plans []PlanSummary
	for rows.Next() {
		var (
			p                   PlanSummary
			created, kind, diet string
		)
		if err := rows.Scan(&p.ID, &created, &kind, &diet, &p.Calories, &p.AverageCalories, &p.Days); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		p.CreatedAt, _ = time.Parse(timeLayout, created)
		p.Type = types.PlanType(kind)
		p.DietType = types.DietType(diet)
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// GetPlan returns the saved plan with the given ID, or ErrNotFound.
func (s *Store) GetPlan(ctx context.Context, id string) (types.MealPlan, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM plans WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return types.MealPlan{}, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.MealPlan{}, fmt.Errorf("looking up plan %s: %w", id, err)
	}

	var plan types.MealPlan
	if err := json.Unmarshal([]byte(body), &plan); err != nil {
		return types.MealPlan{}, fmt.Errorf("parsing plan %s: %w", id, err)
	}
	return plan, nil
}

// DeletePlan removes a saved plan. It returns ErrNotFound if the plan does
// not exist.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return nil
}
