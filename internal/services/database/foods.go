package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fitness-tracker-api/internal/models"
)

// ListFoods returns every food ordered by name.
func (db *DB) ListFoods(ctx context.Context) ([]models.Food, error) {
	query := `
		SELECT id, name, calories::float8 AS calories, protein::float8 AS protein
		FROM foods
		ORDER BY name`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}

	foods, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Food])
	if err != nil {
		return nil, fmt.Errorf("failed to scan foods: %w", err)
	}
	return foods, nil
}
