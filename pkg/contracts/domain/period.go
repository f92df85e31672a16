package domain

import (
	"fmt"
	"time"
)

// Period is a closed calendar-date interval [Start, End]. Comparisons are
// timezone-naive: only the calendar date of each bound matters.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod normalizes both bounds to midnight UTC and validates ordering.
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: dateOnly(start), End: dateOnly(end)}
	if p.End.Before(p.Start) {
		return Period{}, fmt.Errorf("period end %s before start %s",
			p.End.Format("2006-01-02"), p.Start.Format("2006-01-02"))
	}
	return p, nil
}

// Days returns the inclusive length of the period in days. A single-day
// period has length 1.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Comparison derives the equal-length window that ends exactly one day
// before this period starts. For any period P:
//
//	Comparison(P).Days() == P.Days()
//	Comparison(P).End == P.Start - 1 day
func (p Period) Comparison() Period {
	end := p.Start.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(p.Days() - 1))
	return Period{Start: start, End: end}
}

// Contains reports whether t's calendar date falls inside the period,
// bounds included.
func (p Period) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// String renders the period as "2006-01-02..2006-01-02".
func (p Period) String() string {
	return p.Start.Format("2006-01-02") + ".." + p.End.Format("2006-01-02")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
