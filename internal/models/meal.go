package models

// MealTimeLayout is the HH:MM format used for a meal's default time.
const MealTimeLayout = "15:04"

// MealSummary is a meal with calories and protein summed over its foods,
// each weighted by quantity. A meal without foods reports zero for both.
type MealSummary struct {
	ID       int64   `json:"id" db:"id"`
	Name     *string `json:"name" db:"name"`
	Time     *string `json:"time" db:"time"`
	Calories float64 `json:"calories" db:"calories"`
	Protein  float64 `json:"protein" db:"protein"`
}

// AddMealResponse is returned after a meal is inserted.
type AddMealResponse struct {
	MealID int64  `json:"meal_id"`
	Status string `json:"status"`
}
