package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/services"
)

// TagHandler handles HTTP requests for tag management.
type TagHandler struct {
	service services.TagServiceProvider
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service services.TagServiceProvider) *TagHandler {
	return &TagHandler{service: service}
}

// List handles the request to get all tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags()
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tags)
}

// Create handles the request to create a new tag.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" {
		respondError(w, http.StatusBadRequest, "Tag name is required")
		return
	}

	tag, err := h.service.CreateTag(payload.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			respondError(w, http.StatusConflict, "This Tag already exists")
			return
		}
		log.Error().Err(err).Str("tag", payload.Name).Msg("Failed to create tag")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tag)
}
