package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/lucasvieira94/nola-god-level/internal/repo"
	"go.uber.org/zap"
)

// RevenueHandler godoc
// @Summary Gross and net revenue for a date range
// @Tags analytics
// @Produce json
// @Param start query string true "start date (YYYY-MM-DD)"
// @Param end query string true "end date (YYYY-MM-DD)"
// @Success 200 {object} RevenueResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /revenue/ [get]
func RevenueHandler(w http.ResponseWriter, r *http.Request) {
	dr, errs := parseDateRange(r, "start", "end")
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	gross, net, err := analyticsRepo.Revenue(r.Context(), dr)
	if err != nil {
		log.Error("revenue query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute revenue")
		return
	}

	writeJSON(w, http.StatusOK, RevenueResponse{Period: dr.String(), Gross: gross, Net: net})
}

const defaultTopProductsLimit = 10

// TopProductsHandler godoc
// @Summary Products ordered by quantity sold in a date range
// @Tags analytics
// @Produce json
// @Param start query string true "start date (YYYY-MM-DD)"
// @Param end query string true "end date (YYYY-MM-DD)"
// @Param limit query int false "maximum number of products (default 10)"
// @Success 200 {array} repo.ProductRanking
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /top-products/ [get]
func TopProductsHandler(w http.ResponseWriter, r *http.Request) {
	dr, errs := parseDateRange(r, "start", "end")

	limit := defaultTopProductsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, FieldError{Field: "limit", Description: "limit must be a positive integer"})
		} else {
			limit = n
		}
	}
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	rankings, err := analyticsRepo.TopProducts(r.Context(), dr, limit)
	if err != nil {
		log.Error("top products query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute top products")
		return
	}
	if rankings == nil {
		rankings = []repo.ProductRanking{}
	}

	writeJSON(w, http.StatusOK, rankings)
}

// PeakHoursHandler godoc
// @Summary Sale count per hour of day over a date range
// @Tags analytics
// @Produce json
// @Param start query string true "start date (YYYY-MM-DD)"
// @Param end query string true "end date (YYYY-MM-DD)"
// @Success 200 {array} repo.HourCount
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /peak-hours/ [get]
func PeakHoursHandler(w http.ResponseWriter, r *http.Request) {
	dr, errs := parseDateRange(r, "start", "end")
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	hours, err := analyticsRepo.PeakHours(r.Context(), dr)
	if err != nil {
		log.Error("peak hours query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute peak hours")
		return
	}

	writeJSON(w, http.StatusOK, hours)
}

// CompareHandler godoc
// @Summary Compare one metric across two date ranges
// @Tags analytics
// @Produce json
// @Param metric query string false "revenue | net_revenue | sales_count (default revenue)"
// @Param start1 query string true "first period start (YYYY-MM-DD)"
// @Param end1 query string true "first period end (YYYY-MM-DD)"
// @Param start2 query string true "second period start (YYYY-MM-DD)"
// @Param end2 query string true "second period end (YYYY-MM-DD)"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /compare/ [get]
func CompareHandler(w http.ResponseWriter, r *http.Request) {
	metricParam := r.URL.Query().Get("metric")
	if metricParam == "" {
		metricParam = string(repo.MetricRevenue)
	}

	dr1, errs := parseDateRange(r, "start1", "end1")
	dr2, errs2 := parseDateRange(r, "start2", "end2")
	errs = append(errs, errs2...)

	metric, err := repo.ParseMetric(metricParam)
	if err != nil {
		errs = append(errs, FieldError{Field: "metric", Description: "metric must be one of: revenue, net_revenue, sales_count"})
	}
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	v1, err := analyticsRepo.Total(r.Context(), metric, dr1)
	if err == nil {
		var v2 float64
		v2, err = analyticsRepo.Total(r.Context(), metric, dr2)
		if err == nil {
			writeJSON(w, http.StatusOK, CompareResponse{
				Metric:      string(metric),
				Period1:     ComparePeriod{Start: dr1.Start.Format(dateLayout), End: dr1.End.Format(dateLayout), Value: v1},
				Period2:     ComparePeriod{Start: dr2.Start.Format(dateLayout), End: dr2.End.Format(dateLayout), Value: v2},
				DiffPercent: diffPercent(v1, v2),
			})
			return
		}
	}

	log.Error("compare query failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "failed to compare periods")
}

// diffPercent returns the percentage change from v1 to v2, rounded to two
// decimals. When v1 is zero it returns 0 as a sentinel; callers must not
// read that as a true 0% change.
func diffPercent(v1, v2 float64) float64 {
	if v1 == 0 {
		return 0
	}
	return math.Round((v2-v1)/v1*100*100) / 100
}
