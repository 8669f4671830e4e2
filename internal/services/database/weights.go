package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fitness-tracker-api/internal/models"
)

// ListRecentWeightStats returns the latest weight measurements, newest first.
func (db *DB) ListRecentWeightStats(ctx context.Context) ([]models.WeightStat, error) {
	query := `
		SELECT id, date::text AS date, weight::float8 AS weight
		FROM weight_stats
		ORDER BY weight_stats.date DESC
		LIMIT $1`

	rows, err := db.QueryContext(ctx, query, models.RecentWeightStatsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query weight stats: %w", err)
	}

	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WeightStat])
	if err != nil {
		return nil, fmt.Errorf("failed to scan weight stats: %w", err)
	}
	return stats, nil
}

// UpsertWeight records today's weight. A second call on the same date
// overwrites the weight of the existing row. The weight is sent as text and
// converted by the database; nil is stored as NULL.
func (db *DB) UpsertWeight(ctx context.Context, weight *string) (int64, error) {
	query := `
		INSERT INTO weight_stats (weight, date)
		VALUES ($1, CURRENT_DATE)
		ON CONFLICT (date) DO UPDATE SET weight = EXCLUDED.weight
		RETURNING id`

	return db.insertReturningID(ctx, "weight stat", query, weight)
}
