package models

// WeightStat is a body weight measurement. There is at most one row per date.
type WeightStat struct {
	ID     int64    `json:"id" db:"id"`
	Date   *string  `json:"date" db:"date"`
	Weight *float64 `json:"weight" db:"weight"`
}

// RecentWeightStatsLimit bounds the weight_stats read action.
const RecentWeightStatsLimit = 7

// AddWeightResponse is returned after today's weight is inserted or updated.
type AddWeightResponse struct {
	WeightID int64  `json:"weight_id"`
	Status   string `json:"status"`
}
