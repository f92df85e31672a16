package kpi

import (
	"sort"

	"ecompulse/pkg/contracts/domain"
)

// Delivery-day bucket bounds. Buckets are fixed ranges; the last one is
// open-ended.
var deliveryBuckets = []struct {
	name string
	max  int
}{
	{"0-3 days", 3},
	{"4-7 days", 7},
	{"8-14 days", 14},
	{"15+ days", -1},
}

// DeliveryBucket maps a delivery-day count to its fixed bucket name.
func DeliveryBucket(days int) string {
	for _, b := range deliveryBuckets {
		if b.max >= 0 && days <= b.max {
			return b.name
		}
	}
	return deliveryBuckets[len(deliveryBuckets)-1].name
}

// orderReview is one order joined with its review score. Days is nil when
// the order has no recorded delivery date.
type orderReview struct {
	orderID string
	days    *int
	score   int
}

// joinOrderReviews joins delivered records to review scores on order id,
// one row per order. Orders without a review are dropped (inner join);
// an order's first review wins when duplicates exist.
func joinOrderReviews(delivered []domain.SalesRecord, reviews []domain.Review) []orderReview {
	scoreByOrder := make(map[string]int, len(reviews))
	for _, rv := range reviews {
		if _, ok := scoreByOrder[rv.OrderID]; !ok {
			scoreByOrder[rv.OrderID] = rv.Score
		}
	}

	seen := make(map[string]struct{}, len(delivered))
	joined := make([]orderReview, 0, len(delivered))
	for _, rec := range delivered {
		if _, ok := seen[rec.OrderID]; ok {
			continue
		}
		score, ok := scoreByOrder[rec.OrderID]
		if !ok {
			continue
		}
		seen[rec.OrderID] = struct{}{}
		joined = append(joined, orderReview{orderID: rec.OrderID, days: rec.DeliveryDays, score: score})
	}
	return joined
}

// ReviewDeliverySummary groups reviewed orders into the fixed delivery-day
// buckets, reporting order count and mean review score per bucket. Orders
// without a defined delivery duration are excluded, never treated as zero
// days; buckets with no orders are omitted.
func ReviewDeliverySummary(delivered []domain.SalesRecord, reviews []domain.Review) []DeliveryBucketSummary {
	type agg struct {
		orders int
		scores int
	}
	byBucket := make(map[string]*agg)
	for _, or := range joinOrderReviews(delivered, reviews) {
		if or.days == nil {
			continue
		}
		bucket := DeliveryBucket(*or.days)
		a := byBucket[bucket]
		if a == nil {
			a = &agg{}
			byBucket[bucket] = a
		}
		a.orders++
		a.scores += or.score
	}

	summary := make([]DeliveryBucketSummary, 0, len(byBucket))
	for _, b := range deliveryBuckets {
		a, ok := byBucket[b.name]
		if !ok {
			continue
		}
		summary = append(summary, DeliveryBucketSummary{
			Bucket:         b.name,
			Orders:         a.orders,
			AvgReviewScore: Value(float64(a.scores) / float64(a.orders)),
		})
	}
	return summary
}

// AvgReviewByDeliveryBucket is the per-bucket mean review score, in fixed
// bucket order, empty buckets omitted.
func AvgReviewByDeliveryBucket(delivered []domain.SalesRecord, reviews []domain.Review) []DeliveryBucketSummary {
	return ReviewDeliverySummary(delivered, reviews)
}

// AvgReviewByDeliveryDay is the mean review score per exact delivery-day
// count, ascending by day. Days with no orders are omitted.
func AvgReviewByDeliveryDay(delivered []domain.SalesRecord, reviews []domain.Review) []DayReview {
	type agg struct {
		orders int
		scores int
	}
	byDay := make(map[int]*agg)
	for _, or := range joinOrderReviews(delivered, reviews) {
		if or.days == nil {
			continue
		}
		a := byDay[*or.days]
		if a == nil {
			a = &agg{}
			byDay[*or.days] = a
		}
		a.orders++
		a.scores += or.score
	}

	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	out := make([]DayReview, 0, len(days))
	for _, d := range days {
		a := byDay[d]
		out = append(out, DayReview{
			Days:           d,
			Orders:         a.orders,
			AvgReviewScore: Value(float64(a.scores) / float64(a.orders)),
		})
	}
	return out
}

// ReviewScoreDistribution counts reviews per score value, ascending by
// score. Scores outside 1..5 are invalid data and dropped; scores with no
// reviews are omitted.
func ReviewScoreDistribution(reviews []domain.Review) []ScoreCount {
	counts := make(map[int]int)
	for _, rv := range reviews {
		if rv.Score < 1 || rv.Score > 5 {
			continue
		}
		counts[rv.Score]++
	}

	out := make([]ScoreCount, 0, len(counts))
	for score := 1; score <= 5; score++ {
		if counts[score] == 0 {
			continue
		}
		out = append(out, ScoreCount{Score: score, Count: counts[score]})
	}
	return out
}

// AverageDeliveryDays is the mean delivery duration over orders with a
// defined duration, one sample per order. Empty input is absent, never 0:
// a genuine zero-day average must stay distinguishable from no data.
func AverageDeliveryDays(delivered []domain.SalesRecord) NullFloat {
	seen := make(map[string]struct{}, len(delivered))
	var sum float64
	var n int
	for _, rec := range delivered {
		if rec.DeliveryDays == nil {
			continue
		}
		if _, ok := seen[rec.OrderID]; ok {
			continue
		}
		seen[rec.OrderID] = struct{}{}
		sum += float64(*rec.DeliveryDays)
		n++
	}
	if n == 0 {
		return None()
	}
	return Value(sum / float64(n))
}

// AverageReviewScore is the mean review score over reviewed delivered
// orders, one sample per order. Orders without a delivery date still count;
// only the review join matters here. Empty input is absent.
func AverageReviewScore(delivered []domain.SalesRecord, reviews []domain.Review) NullFloat {
	joined := joinOrderReviews(delivered, reviews)
	if len(joined) == 0 {
		return None()
	}
	var sum float64
	for _, or := range joined {
		sum += float64(or.score)
	}
	return Value(sum / float64(len(joined)))
}
