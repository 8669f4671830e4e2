package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to DATABASE_URL and applies the schema. Tests are skipped
// when no database is configured.
func testDB(t *testing.T) *DB {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("Database not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestConnect_InvalidURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, "postgres://nobody@127.0.0.1:1/nothing?connect_timeout=1")
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestDatabaseConnection(t *testing.T) {
	db := testDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, db.Ping(ctx))
}

func TestUpsertWeight_SameDateKeepsOneRow(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first, second := "81.5", "80.9"

	id1, err := db.UpsertWeight(ctx, &first)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM weight_stats WHERE id = $1", id1)
	})

	id2, err := db.UpsertWeight(ctx, &second)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	var rowCount int
	var weight float64
	err = db.QueryRowContext(ctx,
		"SELECT COUNT(*), MAX(weight)::float8 FROM weight_stats WHERE date = CURRENT_DATE").Scan(&rowCount, &weight)
	require.NoError(t, err)
	assert.Equal(t, 1, rowCount)
	assert.InDelta(t, 80.9, weight, 0.001)

	stats, err := db.ListRecentWeightStats(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stats)
	assert.LessOrEqual(t, len(stats), 7)
	assert.Equal(t, id1, stats[0].ID)
}

func TestUpsertWeight_NullWeightFails(t *testing.T) {
	db := testDB(t)

	_, err := db.UpsertWeight(context.Background(), nil)
	assert.Error(t, err)
}

func TestMealsForToday_Aggregation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	emptyName := "Empty test meal"
	emptyID, err := db.CreateMeal(ctx, &emptyName, strPtr("06:00"))
	require.NoError(t, err)

	fullName := "Full test meal"
	fullID, err := db.CreateMeal(ctx, &fullName, strPtr("06:01"))
	require.NoError(t, err)

	var foodID int64
	err = db.QueryRowContext(ctx,
		"INSERT INTO foods (name, calories, protein) VALUES ('Test food', 100, 10) RETURNING id").Scan(&foodID)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		"INSERT INTO meal_foods (meal_id, food_id, quantity) VALUES ($1, $2, 2), ($1, $2, 0.5)", fullID, foodID)
	require.NoError(t, err)

	t.Cleanup(func() {
		bg := context.Background()
		_, _ = db.ExecContext(bg, "DELETE FROM meal_foods WHERE meal_id = ANY($1)", []int64{emptyID, fullID})
		_, _ = db.ExecContext(bg, "DELETE FROM meals WHERE id = ANY($1)", []int64{emptyID, fullID})
		_, _ = db.ExecContext(bg, "DELETE FROM foods WHERE id = $1", foodID)
	})

	meals, err := db.ListMealsForToday(ctx)
	require.NoError(t, err)

	found := map[int64]bool{}
	for _, m := range meals {
		switch m.ID {
		case emptyID:
			found[emptyID] = true
			assert.Equal(t, 0.0, m.Calories)
			assert.Equal(t, 0.0, m.Protein)
			require.NotNil(t, m.Time)
			assert.Contains(t, *m.Time, "06:00")
		case fullID:
			found[fullID] = true
			assert.InDelta(t, 250.0, m.Calories, 0.001)
			assert.InDelta(t, 25.0, m.Protein, 0.001)
		}
	}
	assert.True(t, found[emptyID], "meal without foods should be listed")
	assert.True(t, found[fullID], "meal with foods should be listed")
}

func TestUpsertWeight_TextCoercedByDatabase(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id, err := db.UpsertWeight(ctx, strPtr("79"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM weight_stats WHERE id = $1", id)
	})

	_, err = db.UpsertWeight(ctx, strPtr("heavy"))
	assert.Error(t, err)
}

// A schema without NOT NULL on meals.name must still list such meals, with
// a null name. The temporary table shadows meals for this connection only.
func TestMealsForToday_NullName(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		CREATE TEMP TABLE meals (
			id   SERIAL PRIMARY KEY,
			name TEXT,
			time TEXT,
			date DATE DEFAULT CURRENT_DATE
		)`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DROP TABLE IF EXISTS pg_temp.meals")
	})

	id, err := db.CreateMeal(ctx, nil, strPtr("08:00"))
	require.NoError(t, err)

	meals, err := db.ListMealsForToday(ctx)
	require.NoError(t, err)
	require.Len(t, meals, 1)

	assert.Equal(t, id, meals[0].ID)
	assert.Nil(t, meals[0].Name)
	assert.Equal(t, strPtr("08:00"), meals[0].Time)
	assert.Equal(t, 0.0, meals[0].Calories)
}

func TestWorkoutPlans_NullDescription(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	name := "Null description plan"
	id, err := db.CreateWorkoutPlan(ctx, &name, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM workout_plans WHERE id = $1", id)
	})

	plans, err := db.ListWorkoutPlans(ctx)
	require.NoError(t, err)
	for _, p := range plans {
		if p.ID == id {
			assert.Nil(t, p.Description)
			return
		}
	}
	t.Fatalf("plan %d not listed", id)
}

func TestWorkoutPlans_CreateAndList(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	name := "Test plan " + time.Now().Format("20060102150405")
	id, err := db.CreateWorkoutPlan(ctx, &name, strPtr(""))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM workout_plans WHERE id = $1", id)
	})

	plans, err := db.ListWorkoutPlans(ctx)
	require.NoError(t, err)

	var matched bool
	for _, p := range plans {
		if p.ID == id {
			matched = true
			assert.Equal(t, &name, p.Name)
			assert.Equal(t, strPtr(""), p.Description)
			require.NotNil(t, p.CreatedAt)
			assert.False(t, p.CreatedAt.IsZero())
		}
	}
	assert.True(t, matched)
}

func TestCatalogueQueries(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.SeedCatalogue(ctx)
	require.NoError(t, err)

	exercises, err := db.ListExercises(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, exercises)

	foods, err := db.ListFoods(ctx)
	require.NoError(t, err)
	assert.NotNil(t, foods)

	records, err := db.ListPersonalRecords(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
}

func strPtr(s string) *string { return &s }
