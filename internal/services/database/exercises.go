package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fitness-tracker-api/internal/models"
)

// ListExercises returns every exercise ordered by category, then name.
func (db *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT id, category, name
		FROM exercises
		ORDER BY category, name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}

	exercises, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Exercise])
	if err != nil {
		return nil, fmt.Errorf("failed to scan exercises: %w", err)
	}
	return exercises, nil
}

// ListPersonalRecords returns every personal record with its exercise name,
// newest first.
func (db *DB) ListPersonalRecords(ctx context.Context) ([]models.PersonalRecord, error) {
	query := `
		SELECT pr.id, pr.exercise_id, pr.date::text AS date, pr.value::float8 AS value,
		       e.name AS exercise_name
		FROM personal_records pr
		JOIN exercises e ON pr.exercise_id = e.id
		ORDER BY pr.date DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query personal records: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PersonalRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan personal records: %w", err)
	}
	return records, nil
}
