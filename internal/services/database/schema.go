package database

import (
	"context"
	"fmt"
)

// schema mirrors the tables the API reads and writes. Production databases
// are provisioned separately; Migrate exists for local development and tests.
const schema = `
CREATE TABLE IF NOT EXISTS exercises (
	id       SERIAL PRIMARY KEY,
	category TEXT NOT NULL,
	name     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS foods (
	id       SERIAL PRIMARY KEY,
	name     TEXT NOT NULL,
	calories NUMERIC(8,2) NOT NULL DEFAULT 0,
	protein  NUMERIC(8,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS weight_stats (
	id     SERIAL PRIMARY KEY,
	date   DATE NOT NULL UNIQUE,
	weight NUMERIC(5,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS meals (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	time TEXT NOT NULL,
	date DATE NOT NULL DEFAULT CURRENT_DATE
);

CREATE TABLE IF NOT EXISTS meal_foods (
	meal_id  INT NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
	food_id  INT NOT NULL REFERENCES foods(id),
	quantity NUMERIC(8,2) NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS workout_plans (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS personal_records (
	id          SERIAL PRIMARY KEY,
	exercise_id INT NOT NULL REFERENCES exercises(id),
	date        DATE NOT NULL DEFAULT CURRENT_DATE,
	value       NUMERIC(8,2) NOT NULL
);
`

// Migrate ensures tables exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SeedCatalogue inserts a starter set of exercises and foods when both
// tables are empty. It reports how many rows were inserted.
func (db *DB) SeedCatalogue(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM exercises) + (SELECT COUNT(*) FROM foods)").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalogue: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	exercises := [][2]string{
		{"Chest", "Bench Press"},
		{"Chest", "Push-up"},
		{"Back", "Deadlift"},
		{"Back", "Pull-up"},
		{"Legs", "Squat"},
		{"Legs", "Lunge"},
		{"Shoulders", "Overhead Press"},
		{"Cardio", "Running"},
	}
	foods := []struct {
		name              string
		calories, protein float64
	}{
		{"Chicken breast", 165, 31},
		{"Rice", 130, 2.7},
		{"Egg", 78, 6.3},
		{"Oatmeal", 68, 2.4},
		{"Banana", 89, 1.1},
		{"Greek yogurt", 59, 10},
	}

	inserted := 0
	for _, e := range exercises {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO exercises (category, name) VALUES ($1, $2)", e[0], e[1]); err != nil {
			return inserted, fmt.Errorf("failed to seed exercise %s: %w", e[1], err)
		}
		inserted++
	}
	for _, f := range foods {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO foods (name, calories, protein) VALUES ($1, $2, $3)", f.name, f.calories, f.protein); err != nil {
			return inserted, fmt.Errorf("failed to seed food %s: %w", f.name, err)
		}
		inserted++
	}

	return inserted, nil
}
