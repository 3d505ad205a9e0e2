package models

import "math"

// RatingAggregate keeps the running total and count behind an entity's
// average rating. Mutations go through Record so the three fields can never
// drift apart.
type RatingAggregate struct {
	Total float64 `json:"rating_total"`
	Count int     `json:"rating_count"`
	Avg   float64 `json:"avg_rating"`
}

// Record folds one score into the aggregate and refreshes Avg with the raw
// running mean. Vendors store this value as-is.
func (r *RatingAggregate) Record(score float64) {
	r.Total += score
	r.Count++
	r.Avg = r.Mean()
}

// RecordFloored is the dish variant: same fold, but Avg is floored to one
// decimal. Dishes and vendors intentionally round differently; keep both.
func (r *RatingAggregate) RecordFloored(score float64) {
	r.Total += score
	r.Count++
	r.Avg = r.MeanFloored1()
}

// Mean returns the unrounded average, 0 when nothing has been recorded.
func (r *RatingAggregate) Mean() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.Total / float64(r.Count)
}

// MeanFloored1 returns the average floored to one decimal place.
func (r *RatingAggregate) MeanFloored1() float64 {
	if r.Count == 0 {
		return 0
	}
	return math.Floor(r.Total/float64(r.Count)*10) / 10
}
