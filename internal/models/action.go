package models

// Read actions, selected by the "action" query parameter on GET.
const (
	ActionExercises       = "exercises"
	ActionFoods           = "foods"
	ActionWeightStats     = "weight_stats"
	ActionMealsToday      = "meals_today"
	ActionWorkoutPlans    = "workout_plans"
	ActionPersonalRecords = "personal_records"
)

// DefaultReadAction is used when a GET request carries no action.
const DefaultReadAction = ActionExercises

// Write actions, selected by the "action" field of a POST body.
const (
	ActionAddMeal        = "add_meal"
	ActionAddWeight      = "add_weight"
	ActionAddWorkoutPlan = "add_workout_plan"
)

// StatusCreated is reported by every successful write.
const StatusCreated = "created"

// ErrorResponse is the body of every error-shaped response.
type ErrorResponse struct {
	Error string `json:"error"`
}
