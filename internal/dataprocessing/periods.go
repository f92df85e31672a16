package dataprocessing

import (
	"ecompulse/pkg/contracts/domain"
)

// FilterByYear retains delivered rows whose derived year equals the given
// year.
func FilterByYear(delivered []domain.SalesRecord, year int) []domain.SalesRecord {
	out := make([]domain.SalesRecord, 0, len(delivered))
	for _, rec := range delivered {
		if rec.Year == year {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByDateRange retains delivered rows whose purchase date falls inside
// the period, bounds included. The comparison is calendar-date only. An
// empty result is a normal state, not an error, and the function is
// idempotent: re-filtering by the same period returns an identical slice.
func FilterByDateRange(delivered []domain.SalesRecord, period domain.Period) []domain.SalesRecord {
	out := make([]domain.SalesRecord, 0, len(delivered))
	for _, rec := range delivered {
		if rec.PurchaseTimestamp == nil {
			continue
		}
		if period.Contains(*rec.PurchaseTimestamp) {
			out = append(out, rec)
		}
	}
	return out
}
