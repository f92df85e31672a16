package services

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ecompulse/internal/dataset"
)

// HealthStatus is the response of the health endpoints.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthService reports service liveness and dataset availability.
type HealthService struct {
	cache  *dataset.Cache
	logger *slog.Logger
}

// NewHealthService creates a health service over the given cache.
func NewHealthService(cache *dataset.Cache, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		cache:  cache,
		logger: logger.With(slog.String("component", "health_service")),
	}
}

// HealthCheck verifies that the data directory and its six files exist.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	checks := make(map[string]string, len(dataset.Files))
	status := "healthy"

	for _, name := range dataset.Files {
		if _, err := os.Stat(s.cache.Dir() + string(os.PathSeparator) + name); err != nil {
			checks[name] = "missing"
			status = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}
}

// LivenessCheck always reports the process as alive.
func (s *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{Status: "alive", Timestamp: time.Now().UTC()}
}
