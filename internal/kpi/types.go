package kpi

import (
	"encoding/json"
)

// NullFloat is an optional float64. It keeps "no data" and "no baseline"
// distinct from a legitimate zero: a growth rate against a zero-revenue
// baseline and the average of an empty period are not 0, they are absent,
// and the dashboard renders them as N/A instead of a misleading 0%.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Value returns a valid NullFloat carrying v.
func Value(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// None returns the absent sentinel.
func None() NullFloat {
	return NullFloat{}
}

// MarshalJSON renders the value, or JSON null when absent.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON accepts a number or null.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Value(v)
	return nil
}

// MonthRevenue is one month's total revenue.
type MonthRevenue struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// BucketRevenue is revenue attributed to one named bucket (a product
// category or a customer state).
type BucketRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// StatusShare is the proportion of orders carrying one status.
type StatusShare struct {
	Status string  `json:"status"`
	Share  float64 `json:"share"`
}

// DeliveryBucketSummary aggregates orders falling into one delivery-day
// bucket.
type DeliveryBucketSummary struct {
	Bucket        string    `json:"bucket"`
	Orders        int       `json:"orders"`
	AvgReviewScore NullFloat `json:"avg_review_score"`
}

// DayReview is the mean review score of orders delivered in exactly
// Days days.
type DayReview struct {
	Days           int       `json:"days"`
	Orders         int       `json:"orders"`
	AvgReviewScore NullFloat `json:"avg_review_score"`
}

// ScoreCount is the number of reviews carrying one score value.
type ScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}
