package models

// Exercise is a catalogue entry. Read-only from the API.
type Exercise struct {
	ID       int64   `json:"id" db:"id"`
	Category *string `json:"category" db:"category"`
	Name     *string `json:"name" db:"name"`
}

// PersonalRecord is a best result for an exercise, joined with the exercise name.
type PersonalRecord struct {
	ID           int64    `json:"id" db:"id"`
	ExerciseID   *int64   `json:"exercise_id" db:"exercise_id"`
	Date         *string  `json:"date" db:"date"`
	Value        *float64 `json:"value" db:"value"`
	ExerciseName *string  `json:"exercise_name" db:"exercise_name"`
}
