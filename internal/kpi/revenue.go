package kpi

import (
	"sort"

	"ecompulse/pkg/contracts/domain"
)

// TotalRevenue sums item prices over the records. Empty input is 0.
func TotalRevenue(records []domain.SalesRecord) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Price
	}
	return total
}

// TotalOrders counts distinct order ids. Empty input is 0.
func TotalOrders(records []domain.SalesRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.OrderID] = struct{}{}
	}
	return len(seen)
}

// AverageOrderValue is total revenue divided by distinct order count.
// Zero orders yields 0, not an error and not NaN.
func AverageOrderValue(records []domain.SalesRecord) float64 {
	orders := TotalOrders(records)
	if orders == 0 {
		return 0
	}
	return TotalRevenue(records) / float64(orders)
}

// Growth is the fractional change from prior to current. A zero baseline has
// no defined growth and returns the absent sentinel; the caller renders N/A
// rather than a 0% trend.
func Growth(current, prior float64) NullFloat {
	if prior == 0 {
		return None()
	}
	return Value((current - prior) / prior)
}

// MonthlyRevenue buckets revenue by (year, month) in chronological order.
// Months with no matching records are omitted, not zero-filled.
func MonthlyRevenue(records []domain.SalesRecord) []MonthRevenue {
	type ym struct{ year, month int }
	totals := make(map[ym]float64)
	for _, rec := range records {
		totals[ym{rec.Year, rec.Month}] += rec.Price
	}

	monthly := make([]MonthRevenue, 0, len(totals))
	for key, revenue := range totals {
		monthly = append(monthly, MonthRevenue{Year: key.year, Month: key.month, Revenue: revenue})
	}
	sort.Slice(monthly, func(i, j int) bool {
		if monthly[i].Year != monthly[j].Year {
			return monthly[i].Year < monthly[j].Year
		}
		return monthly[i].Month < monthly[j].Month
	})
	return monthly
}

// MonthOverMonthGrowth computes growth rates between consecutive entries of
// a monthly revenue sequence. The result is aligned with the input: the
// first entry has no baseline and is absent. Entries are treated as
// consecutive if they are adjacent in the sequence, even when a calendar
// month with no revenue sits between them.
func MonthOverMonthGrowth(monthly []MonthRevenue) []NullFloat {
	growth := make([]NullFloat, len(monthly))
	for i := range monthly {
		if i == 0 {
			growth[i] = None()
			continue
		}
		growth[i] = Growth(monthly[i].Revenue, monthly[i-1].Revenue)
	}
	return growth
}

// AverageMoMGrowth is the mean of the defined growth rates. A sequence with
// no defined rates (empty, or single-month) has no average.
func AverageMoMGrowth(growth []NullFloat) NullFloat {
	var sum float64
	var n int
	for _, g := range growth {
		if g.Valid {
			sum += g.Float64
			n++
		}
	}
	if n == 0 {
		return None()
	}
	return Value(sum / float64(n))
}
