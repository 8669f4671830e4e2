package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fitness-tracker-api/internal/models"
)

// ListMealsForToday returns today's meals ordered by time, each with
// calories and protein summed over its foods weighted by quantity.
func (db *DB) ListMealsForToday(ctx context.Context) ([]models.MealSummary, error) {
	query := `
		SELECT m.id, m.name, m.time::text AS time,
		       COALESCE(SUM(f.calories * mf.quantity), 0)::float8 AS calories,
		       COALESCE(SUM(f.protein * mf.quantity), 0)::float8 AS protein
		FROM meals m
		LEFT JOIN meal_foods mf ON m.id = mf.meal_id
		LEFT JOIN foods f ON mf.food_id = f.id
		WHERE m.date = CURRENT_DATE
		GROUP BY m.id, m.name, m.time
		ORDER BY m.time`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query meals: %w", err)
	}

	meals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MealSummary])
	if err != nil {
		return nil, fmt.Errorf("failed to scan meals: %w", err)
	}
	return meals, nil
}

// CreateMeal inserts a meal dated today. nil values are stored as NULL.
func (db *DB) CreateMeal(ctx context.Context, name, mealTime *string) (int64, error) {
	query := `
		INSERT INTO meals (name, time, date)
		VALUES ($1, $2, CURRENT_DATE)
		RETURNING id`

	return db.insertReturningID(ctx, "meal", query, name, mealTime)
}
