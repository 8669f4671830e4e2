package models

import "time"

// WorkoutPlan is a named training plan.
type WorkoutPlan struct {
	ID          int64      `json:"id" db:"id"`
	Name        *string    `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
}

// AddWorkoutPlanResponse is returned after a plan is inserted.
type AddWorkoutPlanResponse struct {
	PlanID int64  `json:"plan_id"`
	Status string `json:"status"`
}
