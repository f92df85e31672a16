package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "ecompulse/internal/errors"
	"ecompulse/pkg/contracts/domain"
)

// queryDateLayout is the wire format of the start and end query parameters.
const queryDateLayout = "2006-01-02"

// dashboardQuery carries the validated date-range parameters of a request.
type dashboardQuery struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

// DashboardHandler serves the KPI read API with RFC 7807 error responses.
type DashboardHandler struct {
	service      DashboardReader
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service DashboardReader, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetSnapshot)
	r.Get("/monthly", h.GetMonthlySeries)
	r.Get("/categories", h.GetRevenueByCategory)
	r.Get("/states", h.GetRevenueByState)
	r.Get("/reviews", h.GetReviewAnalytics)
	r.Get("/status-distribution", h.GetStatusDistribution)

	return r
}

// periodFromQuery parses and validates the start/end query parameters.
// A false return means the error response has already been written.
func (h *DashboardHandler) periodFromQuery(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	q := dashboardQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewValidationError(
			"start and end are required and must use the YYYY-MM-DD format", err))
		return domain.Period{}, false
	}

	start, _ := time.Parse(queryDateLayout, q.Start)
	end, _ := time.Parse(queryDateLayout, q.End)

	period, err := domain.NewPeriod(start, end)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewValidationError(
			fmt.Sprintf("invalid period %s..%s", q.Start, q.End), err))
		return domain.Period{}, false
	}

	return period, true
}

// GetSnapshot handles GET /api/dashboard with start and end parameters.
func (h *DashboardHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "computing dashboard snapshot",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("period", period.String()),
	)

	result, err := h.service.Snapshot(r.Context(), period)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// GetMonthlySeries handles GET /api/dashboard/monthly.
func (h *DashboardHandler) GetMonthlySeries(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.MonthlySeries(r.Context(), period)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// GetRevenueByCategory handles GET /api/dashboard/categories.
func (h *DashboardHandler) GetRevenueByCategory(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}

	buckets, err := h.service.RevenueByCategory(r.Context(), period)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   buckets,
		"count":  len(buckets),
	})
}

// GetRevenueByState handles GET /api/dashboard/states.
func (h *DashboardHandler) GetRevenueByState(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}

	buckets, err := h.service.RevenueByState(r.Context(), period)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   buckets,
		"count":  len(buckets),
	})
}

// GetReviewAnalytics handles GET /api/dashboard/reviews.
func (h *DashboardHandler) GetReviewAnalytics(w http.ResponseWriter, r *http.Request) {
	period, ok := h.periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.ReviewAnalytics(r.Context(), period)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// GetStatusDistribution handles GET /api/dashboard/status-distribution.
// The year parameter is required; it scopes the distribution to orders
// placed in that calendar year.
func (h *DashboardHandler) GetStatusDistribution(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 9999 {
		h.errorHandler.HandleError(w, r, apierrors.NewValidationError(
			fmt.Sprintf("year must be a four-digit year, got %q", raw), err))
		return
	}

	shares, err := h.service.StatusDistribution(r.Context(), year)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   shares,
		"count":  len(shares),
	})
}
