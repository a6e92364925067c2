package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/auth"
	"github.com/workasana/workasana-be/internal/services"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "Name, Email and Password fields are required")
		return
	}

	user, err := h.service.CreateUser(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			respondError(w, http.StatusConflict, "This email is already registered")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "User has successfully registered",
		"name":    user.Name,
		"email":   user.Email,
	})
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and Password are required")
		return
	}

	_, err := h.service.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthentication) {
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondInternal(w, err)
		return
	}

	token, err := h.tokens.Issue("user")
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue token")
		respondInternal(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logged in successfully",
		"token":   token,
	})
}
