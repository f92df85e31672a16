package http

import (
	"context"

	"ecompulse/internal/kpi"
	"ecompulse/internal/services"
	"ecompulse/pkg/contracts/domain"
)

// DashboardReader is the service surface the dashboard handler depends on.
// Implemented by services.DashboardService; narrowed here so handler tests
// can substitute a stub.
type DashboardReader interface {
	Snapshot(ctx context.Context, period domain.Period) (*services.DashboardResult, error)
	MonthlySeries(ctx context.Context, period domain.Period) (*services.MonthlySeriesResult, error)
	RevenueByCategory(ctx context.Context, period domain.Period) ([]kpi.BucketRevenue, error)
	RevenueByState(ctx context.Context, period domain.Period) ([]kpi.BucketRevenue, error)
	ReviewAnalytics(ctx context.Context, period domain.Period) (*services.ReviewAnalyticsResult, error)
	StatusDistribution(ctx context.Context, year int) ([]kpi.StatusShare, error)
}

// HealthReader is the service surface the health handler depends on.
type HealthReader interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	LivenessCheck(ctx context.Context) services.HealthStatus
}
