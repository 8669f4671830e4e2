package models

// Food holds per-unit nutrition values.
type Food struct {
	ID       int64    `json:"id" db:"id"`
	Name     *string  `json:"name" db:"name"`
	Calories *float64 `json:"calories" db:"calories"`
	Protein  *float64 `json:"protein" db:"protein"`
}
