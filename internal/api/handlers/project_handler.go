package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/services"
)

// ProjectHandler handles HTTP requests for project management.
type ProjectHandler struct {
	service services.ProjectServiceProvider
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service services.ProjectServiceProvider) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles the request to get all projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects()
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// Get handles the request to get a single project by its ID.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectId")
	project, err := h.service.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Create handles the request to create a new project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" {
		respondError(w, http.StatusBadRequest, "Project name is required")
		return
	}

	project, err := h.service.CreateProject(payload.Name, payload.Description)
	if err != nil {
		log.Error().Err(err).Str("project", payload.Name).Msg("Failed to create project")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, project)
}
