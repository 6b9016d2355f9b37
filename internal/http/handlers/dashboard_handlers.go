package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lucasvieira94/nola-god-level/internal/auth"
	"github.com/lucasvieira94/nola-god-level/internal/repo"
	"go.uber.org/zap"
)

// ownerStore returns the dashboard store scoped to the authenticated caller.
func ownerStore(r *http.Request) repo.DashboardStore {
	return dashboardRepo.ForOwner(auth.UserID(r))
}

func dashboardID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// ListDashboardsHandler godoc
// @Summary List the caller's dashboards
// @Tags dashboards
// @Produce json
// @Success 200 {array} models.Dashboard
// @Security BearerAuth
// @Router /dashboards/ [get]
func ListDashboardsHandler(w http.ResponseWriter, r *http.Request) {
	dashboards, err := ownerStore(r).List(r.Context())
	if err != nil {
		log.Error("dashboard list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list dashboards")
		return
	}

	writeJSON(w, http.StatusOK, dashboards)
}

// CreateDashboardHandler godoc
// @Summary Create a dashboard owned by the caller
// @Tags dashboards
// @Accept json
// @Produce json
// @Param dashboard body DashboardRequest true "name and opaque layout document"
// @Success 201 {object} models.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboards/ [post]
func CreateDashboardHandler(w http.ResponseWriter, r *http.Request) {
	var req DashboardRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validateDashboard(req); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	d, err := ownerStore(r).Create(r.Context(), req.Name, req.Layout)
	if errors.Is(err, repo.ErrDuplicateDashboardName) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		log.Error("dashboard create failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create dashboard")
		return
	}

	writeJSON(w, http.StatusCreated, d)
}

// GetDashboardHandler godoc
// @Summary Fetch one of the caller's dashboards
// @Tags dashboards
// @Produce json
// @Param id path int true "dashboard id"
// @Success 200 {object} models.Dashboard
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboards/{id} [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := dashboardID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dashboard id")
		return
	}

	d, err := ownerStore(r).GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrDashboardNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Error("dashboard fetch failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch dashboard")
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// UpdateDashboardHandler godoc
// @Summary Update one of the caller's dashboards
// @Tags dashboards
// @Accept json
// @Produce json
// @Param id path int true "dashboard id"
// @Param dashboard body DashboardRequest true "name and opaque layout document"
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboards/{id} [put]
func UpdateDashboardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := dashboardID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dashboard id")
		return
	}

	var req DashboardRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validateDashboard(req); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	d, err := ownerStore(r).Update(r.Context(), id, req.Name, req.Layout)
	switch {
	case errors.Is(err, repo.ErrDashboardNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repo.ErrDuplicateDashboardName):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		log.Error("dashboard update failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update dashboard")
	default:
		writeJSON(w, http.StatusOK, d)
	}
}

// DeleteDashboardHandler godoc
// @Summary Delete one of the caller's dashboards
// @Tags dashboards
// @Param id path int true "dashboard id"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboards/{id} [delete]
func DeleteDashboardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := dashboardID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dashboard id")
		return
	}

	err = ownerStore(r).Delete(r.Context(), id)
	if errors.Is(err, repo.ErrDashboardNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Error("dashboard delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete dashboard")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
