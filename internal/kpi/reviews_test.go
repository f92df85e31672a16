package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecompulse/pkg/contracts/domain"
)

func intPtr(v int) *int { return &v }

func TestDeliveryBucket(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "0-3 days"},
		{3, "0-3 days"},
		{4, "4-7 days"},
		{7, "4-7 days"},
		{8, "8-14 days"},
		{14, "8-14 days"},
		{15, "15+ days"},
		{60, "15+ days"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeliveryBucket(tt.days), "days=%d", tt.days)
	}
}

func TestReviewDeliverySummary(t *testing.T) {
	delivered := []domain.SalesRecord{
		{OrderID: "fast1", DeliveryDays: intPtr(2)},
		{OrderID: "fast2", DeliveryDays: intPtr(3)},
		{OrderID: "slow", DeliveryDays: intPtr(20)},
		{OrderID: "undelivered", DeliveryDays: nil},
	}
	reviews := []domain.Review{
		{ReviewID: "r1", OrderID: "fast1", Score: 5},
		{ReviewID: "r2", OrderID: "fast2", Score: 4},
		{ReviewID: "r3", OrderID: "slow", Score: 1},
		{ReviewID: "r4", OrderID: "undelivered", Score: 3},
	}

	summary := ReviewDeliverySummary(delivered, reviews)
	require.Len(t, summary, 2)

	assert.Equal(t, "0-3 days", summary[0].Bucket)
	assert.Equal(t, 2, summary[0].Orders)
	assert.InDelta(t, 4.5, summary[0].AvgReviewScore.Float64, 1e-9)

	assert.Equal(t, "15+ days", summary[1].Bucket)
	assert.Equal(t, 1, summary[1].Orders)
	assert.InDelta(t, 1.0, summary[1].AvgReviewScore.Float64, 1e-9)
}

func TestReviewDeliverySummary_DedupsItemRows(t *testing.T) {
	// Two item rows of the same order contribute one summary sample.
	delivered := []domain.SalesRecord{
		{OrderID: "a", ItemID: 1, DeliveryDays: intPtr(5)},
		{OrderID: "a", ItemID: 2, DeliveryDays: intPtr(5)},
	}
	reviews := []domain.Review{{ReviewID: "r", OrderID: "a", Score: 4}}

	summary := ReviewDeliverySummary(delivered, reviews)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Orders)
}

func TestAvgReviewByDeliveryDay(t *testing.T) {
	delivered := []domain.SalesRecord{
		{OrderID: "a", DeliveryDays: intPtr(2)},
		{OrderID: "b", DeliveryDays: intPtr(2)},
		{OrderID: "c", DeliveryDays: intPtr(9)},
	}
	reviews := []domain.Review{
		{ReviewID: "r1", OrderID: "a", Score: 5},
		{ReviewID: "r2", OrderID: "b", Score: 3},
		{ReviewID: "r3", OrderID: "c", Score: 2},
	}

	byDay := AvgReviewByDeliveryDay(delivered, reviews)
	require.Len(t, byDay, 2)
	assert.Equal(t, 2, byDay[0].Days)
	assert.InDelta(t, 4.0, byDay[0].AvgReviewScore.Float64, 1e-9)
	assert.Equal(t, 9, byDay[1].Days)
	assert.Equal(t, 1, byDay[1].Orders)
}

func TestReviewScoreDistribution(t *testing.T) {
	reviews := []domain.Review{
		{ReviewID: "r1", OrderID: "a", Score: 1},
		{ReviewID: "r2", OrderID: "b", Score: 1},
		{ReviewID: "r3", OrderID: "c", Score: 5},
		{ReviewID: "r4", OrderID: "d", Score: 6},
		{ReviewID: "r5", OrderID: "e", Score: 0},
	}

	dist := ReviewScoreDistribution(reviews)
	require.Len(t, dist, 2)
	assert.Equal(t, ScoreCount{Score: 1, Count: 2}, dist[0])
	assert.Equal(t, ScoreCount{Score: 5, Count: 1}, dist[1])
}

func TestAverageDeliveryDays(t *testing.T) {
	t.Run("empty input is absent, not zero", func(t *testing.T) {
		assert.False(t, AverageDeliveryDays(nil).Valid)
	})

	t.Run("nil durations are excluded, not counted as zero", func(t *testing.T) {
		delivered := []domain.SalesRecord{
			{OrderID: "a", DeliveryDays: intPtr(4)},
			{OrderID: "b", DeliveryDays: intPtr(8)},
			{OrderID: "c", DeliveryDays: nil},
		}

		got := AverageDeliveryDays(delivered)
		require.True(t, got.Valid)
		assert.InDelta(t, 6.0, got.Float64, 1e-9)
	})

	t.Run("zero-day average stays distinguishable from no data", func(t *testing.T) {
		delivered := []domain.SalesRecord{{OrderID: "a", DeliveryDays: intPtr(0)}}
		got := AverageDeliveryDays(delivered)
		require.True(t, got.Valid)
		assert.Equal(t, 0.0, got.Float64)
	})
}

func TestAverageReviewScore(t *testing.T) {
	t.Run("empty input is absent", func(t *testing.T) {
		assert.False(t, AverageReviewScore(nil, nil).Valid)
	})

	t.Run("orders without delivery date still count", func(t *testing.T) {
		delivered := []domain.SalesRecord{
			{OrderID: "a", DeliveryDays: intPtr(3)},
			{OrderID: "b", DeliveryDays: nil},
		}
		reviews := []domain.Review{
			{ReviewID: "r1", OrderID: "a", Score: 5},
			{ReviewID: "r2", OrderID: "b", Score: 1},
		}

		got := AverageReviewScore(delivered, reviews)
		require.True(t, got.Valid)
		assert.InDelta(t, 3.0, got.Float64, 1e-9)
	})
}

func TestUndeliveredRowCountsForRevenueButNotDelivery(t *testing.T) {
	// A delivered-status row with no delivery timestamp contributes to
	// revenue and order counts but stays out of every delivery aggregation.
	records := []domain.SalesRecord{
		{OrderID: "a", Price: 100, DeliveryDays: nil},
	}
	reviews := []domain.Review{{ReviewID: "r", OrderID: "a", Score: 4}}

	assert.Equal(t, 100.0, TotalRevenue(records))
	assert.Equal(t, 1, TotalOrders(records))
	assert.False(t, AverageDeliveryDays(records).Valid)
	assert.Empty(t, ReviewDeliverySummary(records, reviews))
}
