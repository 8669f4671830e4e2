package handlers

import (
	"context"

	"fitness-tracker-api/internal/models"
	"fitness-tracker-api/internal/utils"
)

// readAction runs one fixed query and returns the JSON result object.
type readAction func(ctx context.Context, store Store) (interface{}, error)

// writeAction reads its fields from the body and runs one auto-committed statement.
type writeAction func(ctx context.Context, h *FitnessHandler, store Store, body models.RequestBody) (interface{}, error)

var readActions = map[string]readAction{
	models.ActionExercises:       listAction("exercises", Store.ListExercises),
	models.ActionFoods:           listAction("foods", Store.ListFoods),
	models.ActionWeightStats:     listAction("weight_stats", Store.ListRecentWeightStats),
	models.ActionMealsToday:      listAction("meals", Store.ListMealsForToday),
	models.ActionWorkoutPlans:    listAction("workout_plans", Store.ListWorkoutPlans),
	models.ActionPersonalRecords: listAction("personal_records", Store.ListPersonalRecords),
}

var writeActions = map[string]writeAction{
	models.ActionAddMeal:        addMeal,
	models.ActionAddWeight:      addWeight,
	models.ActionAddWorkoutPlan: addWorkoutPlan,
}

// listAction wraps a list query so its rows are returned under key. An empty
// result is encoded as [] rather than null.
func listAction[T any](key string, list func(Store, context.Context) ([]T, error)) readAction {
	return func(ctx context.Context, store Store) (interface{}, error) {
		rows, err := list(store, ctx)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []T{}
		}
		return map[string]interface{}{key: rows}, nil
	}
}

func addMeal(ctx context.Context, h *FitnessHandler, store Store, body models.RequestBody) (interface{}, error) {
	name, _ := body.Text("name")

	id, err := store.CreateMeal(ctx, name, body.MealTime(h.now()))
	if err != nil {
		return nil, err
	}
	utils.ForInvocation(ctx).Info("Created meal", utils.Int64("mealID", id))
	return models.AddMealResponse{MealID: id, Status: models.StatusCreated}, nil
}

func addWeight(ctx context.Context, _ *FitnessHandler, store Store, body models.RequestBody) (interface{}, error) {
	weight, _ := body.Text("weight")

	id, err := store.UpsertWeight(ctx, weight)
	if err != nil {
		return nil, err
	}
	utils.ForInvocation(ctx).Info("Recorded weight", utils.Int64("weightID", id))
	return models.AddWeightResponse{WeightID: id, Status: models.StatusCreated}, nil
}

func addWorkoutPlan(ctx context.Context, _ *FitnessHandler, store Store, body models.RequestBody) (interface{}, error) {
	name, _ := body.Text("name")

	id, err := store.CreateWorkoutPlan(ctx, name, body.TextOr("description", ""))
	if err != nil {
		return nil, err
	}
	utils.ForInvocation(ctx).Info("Created workout plan", utils.Int64("planID", id))
	return models.AddWorkoutPlanResponse{PlanID: id, Status: models.StatusCreated}, nil
}
