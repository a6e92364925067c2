package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/services"
)

// TeamHandler handles HTTP requests for team management.
type TeamHandler struct {
	service services.TeamServiceProvider
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service services.TeamServiceProvider) *TeamHandler {
	return &TeamHandler{service: service}
}

// List handles the request to get all teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams()
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, teams)
}

// Get handles the request to get a single team by its ID.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamId")
	team, err := h.service.GetTeamByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Team not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// Create handles the request to create a new team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" {
		respondError(w, http.StatusBadRequest, "Team name is required")
		return
	}

	team, err := h.service.CreateTeam(payload.Name, payload.Description)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			respondError(w, http.StatusConflict, fmt.Sprintf("Team name (%s) already exists", payload.Name))
			return
		}
		log.Error().Err(err).Str("team", payload.Name).Msg("Failed to create team")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, team)
}
