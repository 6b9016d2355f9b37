package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/lucasvieira94/nola-god-level/internal/repo"
)

const dateLayout = "2006-01-02"

// parseDateRange reads start/end query parameters. Both are required; an
// unbounded aggregation is never issued.
func parseDateRange(r *http.Request, startParam, endParam string) (repo.DateRange, []FieldError) {
	var errs []FieldError
	var dr repo.DateRange

	start := r.URL.Query().Get(startParam)
	end := r.URL.Query().Get(endParam)

	if start == "" {
		errs = append(errs, FieldError{Field: startParam, Description: startParam + " is required (YYYY-MM-DD)"})
	} else if t, err := time.Parse(dateLayout, start); err != nil {
		errs = append(errs, FieldError{Field: startParam, Description: startParam + " must be a valid date (YYYY-MM-DD)"})
	} else {
		dr.Start = t
	}

	if end == "" {
		errs = append(errs, FieldError{Field: endParam, Description: endParam + " is required (YYYY-MM-DD)"})
	} else if t, err := time.Parse(dateLayout, end); err != nil {
		errs = append(errs, FieldError{Field: endParam, Description: endParam + " must be a valid date (YYYY-MM-DD)"})
	} else {
		dr.End = t
	}

	if len(errs) == 0 && dr.End.Before(dr.Start) {
		errs = append(errs, FieldError{Field: endParam, Description: endParam + " must not be before " + startParam})
	}

	return dr, errs
}

const maxDashboardNameLen = 120

func validateDashboard(req DashboardRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Description: "name is required"})
	}
	if len(req.Name) > maxDashboardNameLen {
		errs = append(errs, FieldError{Field: "name", Description: "name must be at most 120 characters"})
	}
	if len(req.Layout) == 0 {
		errs = append(errs, FieldError{Field: "layout", Description: "layout is required"})
	}
	return errs
}
