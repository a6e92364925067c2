package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// respondJSON writes v as a JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response body")
	}
}

// respondError writes an {"error": msg} body with the given status.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondInternal logs the underlying error and answers with a generic 500
// so no internal detail reaches the client.
func respondInternal(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Unhandled error")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
