package services

import (
	"context"
	"log/slog"
	"time"

	"ecompulse/internal/dataprocessing"
	"ecompulse/internal/dataset"
	"ecompulse/internal/kpi"
	"ecompulse/pkg/contracts/domain"
)

// KPISnapshot is the scalar KPI set of one period. Values are raw numbers;
// formatting (currency symbols, rounding, percent signs) belongs to the
// presentation layer.
type KPISnapshot struct {
	Period              domain.Period `json:"period"`
	TotalRevenue        float64       `json:"total_revenue"`
	TotalOrders         int           `json:"total_orders"`
	AverageOrderValue   float64       `json:"average_order_value"`
	AverageDeliveryDays kpi.NullFloat `json:"average_delivery_days"`
	AverageReviewScore  kpi.NullFloat `json:"average_review_score"`
}

// DashboardResult pairs the current period's KPIs with the automatically
// derived comparison period and the growth rates between the two.
type DashboardResult struct {
	Current          KPISnapshot   `json:"current"`
	Comparison       KPISnapshot   `json:"comparison"`
	RevenueGrowth    kpi.NullFloat `json:"revenue_growth"`
	OrderCountGrowth kpi.NullFloat `json:"order_count_growth"`
	AOVGrowth        kpi.NullFloat `json:"aov_growth"`
}

// MonthlySeriesResult is the monthly revenue series of a period with
// month-over-month growth rates aligned to it.
type MonthlySeriesResult struct {
	Monthly       []kpi.MonthRevenue `json:"monthly"`
	Growth        []kpi.NullFloat    `json:"growth"`
	AverageGrowth kpi.NullFloat      `json:"average_growth"`
}

// ReviewAnalyticsResult groups the customer-experience outputs of a period.
type ReviewAnalyticsResult struct {
	BucketSummary []kpi.DeliveryBucketSummary `json:"bucket_summary"`
	ByDay         []kpi.DayReview             `json:"by_day"`
	Distribution  []kpi.ScoreCount            `json:"distribution"`
}

// DashboardService orchestrates one dashboard refresh: it pulls the cached
// cleaned dataset, slices it to the requested and comparison periods, and
// runs the metric functions over both slices. It computes nothing itself.
type DashboardService struct {
	cache  *dataset.Cache
	logger *slog.Logger
}

// NewDashboardService creates a dashboard service over the given cache.
func NewDashboardService(cache *dataset.Cache, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		cache:  cache,
		logger: logger.With(slog.String("component", "dashboard_service")),
	}
}

// Warm loads the dataset into the cache ahead of the first request.
func (s *DashboardService) Warm(ctx context.Context) error {
	_, err := s.cache.Snapshot(ctx)
	return err
}

// Snapshot computes the KPI sets for the given period and its comparison
// window. The metric engine runs twice, once per period; growth rates are
// derived from the two scalar sets.
func (s *DashboardService) Snapshot(ctx context.Context, period domain.Period) (*DashboardResult, error) {
	start := time.Now()

	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	comparison := period.Comparison()
	current := s.periodKPIs(snap, period)
	prior := s.periodKPIs(snap, comparison)

	result := &DashboardResult{
		Current:          current,
		Comparison:       prior,
		RevenueGrowth:    kpi.Growth(current.TotalRevenue, prior.TotalRevenue),
		OrderCountGrowth: kpi.Growth(float64(current.TotalOrders), float64(prior.TotalOrders)),
		AOVGrowth:        kpi.Growth(current.AverageOrderValue, prior.AverageOrderValue),
	}

	s.logger.InfoContext(ctx, "dashboard snapshot computed",
		slog.String("period", period.String()),
		slog.String("comparison", comparison.String()),
		slog.Int("current_orders", current.TotalOrders),
		slog.String("duration", time.Since(start).String()))

	return result, nil
}

func (s *DashboardService) periodKPIs(snap *dataset.Snapshot, period domain.Period) KPISnapshot {
	records := dataprocessing.FilterByDateRange(snap.Delivered, period)
	return KPISnapshot{
		Period:              period,
		TotalRevenue:        kpi.TotalRevenue(records),
		TotalOrders:         kpi.TotalOrders(records),
		AverageOrderValue:   kpi.AverageOrderValue(records),
		AverageDeliveryDays: kpi.AverageDeliveryDays(records),
		AverageReviewScore:  kpi.AverageReviewScore(records, snap.Tables.Reviews),
	}
}

// MonthlySeries returns the monthly revenue series of the period with
// aligned month-over-month growth rates.
func (s *DashboardService) MonthlySeries(ctx context.Context, period domain.Period) (*MonthlySeriesResult, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	records := dataprocessing.FilterByDateRange(snap.Delivered, period)
	monthly := kpi.MonthlyRevenue(records)
	growth := kpi.MonthOverMonthGrowth(monthly)

	return &MonthlySeriesResult{
		Monthly:       monthly,
		Growth:        growth,
		AverageGrowth: kpi.AverageMoMGrowth(growth),
	}, nil
}

// RevenueByCategory returns the period's revenue per product category.
func (s *DashboardService) RevenueByCategory(ctx context.Context, period domain.Period) ([]kpi.BucketRevenue, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return kpi.RevenueByCategory(dataprocessing.FilterByDateRange(snap.Delivered, period)), nil
}

// RevenueByState returns the period's revenue per customer state.
func (s *DashboardService) RevenueByState(ctx context.Context, period domain.Period) ([]kpi.BucketRevenue, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return kpi.RevenueByState(dataprocessing.FilterByDateRange(snap.Delivered, period)), nil
}

// ReviewAnalytics returns the period's delivery-experience outputs.
func (s *DashboardService) ReviewAnalytics(ctx context.Context, period domain.Period) (*ReviewAnalyticsResult, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	records := dataprocessing.FilterByDateRange(snap.Delivered, period)
	reviews := snap.Tables.Reviews

	return &ReviewAnalyticsResult{
		BucketSummary: kpi.ReviewDeliverySummary(records, reviews),
		ByDay:         kpi.AvgReviewByDeliveryDay(records, reviews),
		Distribution:  kpi.ReviewScoreDistribution(reviewsForOrders(records, reviews)),
	}, nil
}

// StatusDistribution returns the share of each order status for a year.
func (s *DashboardService) StatusDistribution(ctx context.Context, year int) ([]kpi.StatusShare, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return kpi.OrderStatusDistribution(snap.Tables.Orders, year), nil
}

// reviewsForOrders restricts reviews to those belonging to the given sales
// records, so a period's score distribution only counts its own orders.
func reviewsForOrders(records []domain.SalesRecord, reviews []domain.Review) []domain.Review {
	inPeriod := make(map[string]struct{}, len(records))
	for _, rec := range records {
		inPeriod[rec.OrderID] = struct{}{}
	}
	out := make([]domain.Review, 0, len(reviews))
	for _, rv := range reviews {
		if _, ok := inPeriod[rv.OrderID]; ok {
			out = append(out, rv)
		}
	}
	return out
}
