package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spendlite/spendlite-backend/internal/middleware"
	"github.com/spendlite/spendlite-backend/internal/response"
)

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       ReportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.Summary)
	r.Get("/analytics", h.Analytics)
	r.Get("/balance-series", h.BalanceSeries)
	return r
}

// Summary backs the dashboard: headline totals, recent activity and the
// downsampled 30-day balance trend, all relative to the server clock.
func (h *reportHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.ReportSvc.Dashboard(r.Context(), uid, time.Now())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *reportHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.ReportSvc.Analytics(r.Context(), uid, time.Now())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *reportHandlers) BalanceSeries(w http.ResponseWriter, r *http.Request) {
	windowDays := 0 // 0 lets the service apply its default window
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, "invalid_input", "days must be an integer")
			return
		}
		windowDays = parsed
	}
	downsample := r.URL.Query().Get("downsample") == "true"

	uid := middleware.UID(r.Context())
	result, err := h.ReportSvc.BalanceSeries(r.Context(), uid, time.Now(), windowDays, downsample)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
