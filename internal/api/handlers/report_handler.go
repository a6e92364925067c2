package handlers

import (
	"errors"
	"net/http"

	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/services"
)

// ReportHandler handles HTTP requests for the reporting endpoints.
type ReportHandler struct {
	service services.ReportServiceProvider
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service services.ReportServiceProvider) *ReportHandler {
	return &ReportHandler{service: service}
}

// ClosedTasks returns the per-team count of completed tasks. No completed
// tasks at all is reported as not-found, not as an empty list.
func (h *ReportHandler) ClosedTasks(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ClosedTasksByTeam()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Reports of desired Tasks not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// Pending returns the per-project worst-case remaining days across
// outstanding tasks.
func (h *ReportHandler) Pending(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.PendingTasksByProject()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Pending Tasks not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// LastWeek returns completed tasks whose last update is at least a week old.
func (h *ReportHandler) LastWeek(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.CompletedLastWeek()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Reports of desired Tasks not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}
