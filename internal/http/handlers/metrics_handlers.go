package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetDashboardMetricsHandler godoc
// @Summary Fixed metrics snapshot for the front-end dashboard
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.DashboardMetrics
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard-metrics [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics(r.Context(), nowFunc())
	if err != nil {
		log.Error("dashboard metrics query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}

	writeJSON(w, http.StatusOK, m)
}
