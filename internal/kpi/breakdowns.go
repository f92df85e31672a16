package kpi

import (
	"sort"

	"ecompulse/pkg/contracts/domain"
)

// UnknownBucket collects rows whose category or state value is missing.
const UnknownBucket = "unknown"

// RevenueByCategory sums revenue per product category, descending by
// revenue with ties broken by name. Rows without a category land in the
// explicit unknown bucket instead of being dropped.
func RevenueByCategory(records []domain.SalesRecord) []BucketRevenue {
	return revenueBy(records, func(rec domain.SalesRecord) string { return rec.Category })
}

// RevenueByState sums revenue per customer state with the same ordering and
// unknown-bucket policy as RevenueByCategory.
func RevenueByState(records []domain.SalesRecord) []BucketRevenue {
	return revenueBy(records, func(rec domain.SalesRecord) string { return rec.CustomerState })
}

func revenueBy(records []domain.SalesRecord, key func(domain.SalesRecord) string) []BucketRevenue {
	totals := make(map[string]float64)
	for _, rec := range records {
		name := key(rec)
		if name == "" {
			name = UnknownBucket
		}
		totals[name] += rec.Price
	}

	buckets := make([]BucketRevenue, 0, len(totals))
	for name, revenue := range totals {
		buckets = append(buckets, BucketRevenue{Name: name, Revenue: revenue})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Revenue != buckets[j].Revenue {
			return buckets[i].Revenue > buckets[j].Revenue
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// OrderStatusDistribution returns the share of each order status among
// orders purchased in the given year, descending by share. Orders whose
// purchase timestamp is missing are skipped.
func OrderStatusDistribution(orders []domain.Order, year int) []StatusShare {
	counts := make(map[string]int)
	var total int
	for _, o := range orders {
		if o.PurchaseTimestamp == nil || o.PurchaseTimestamp.Year() != year {
			continue
		}
		counts[o.Status]++
		total++
	}
	if total == 0 {
		return []StatusShare{}
	}

	shares := make([]StatusShare, 0, len(counts))
	for status, count := range counts {
		shares = append(shares, StatusShare{Status: status, Share: float64(count) / float64(total)})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Share != shares[j].Share {
			return shares[i].Share > shares[j].Share
		}
		return shares[i].Status < shares[j].Status
	})
	return shares
}
