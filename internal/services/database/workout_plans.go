package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fitness-tracker-api/internal/models"
)

// ListWorkoutPlans returns every workout plan, newest first.
func (db *DB) ListWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	query := `
		SELECT id, name, description, created_at
		FROM workout_plans
		ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workout plans: %w", err)
	}

	plans, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkoutPlan])
	if err != nil {
		return nil, fmt.Errorf("failed to scan workout plans: %w", err)
	}
	return plans, nil
}

// CreateWorkoutPlan inserts a workout plan. created_at is set by the database.
func (db *DB) CreateWorkoutPlan(ctx context.Context, name, description *string) (int64, error) {
	query := `
		INSERT INTO workout_plans (name, description)
		VALUES ($1, $2)
		RETURNING id`

	return db.insertReturningID(ctx, "workout plan", query, name, description)
}
