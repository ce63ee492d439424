package handlers

import (
	"errors"
	"net/http"

	"pet-tracker-backend/internal/models"
	"pet-tracker-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(w, "Email already registered", http.StatusConflict)
			return
		}
		log.Error().Err(err).Msg("Failed to sign up user")
		respondError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("User registered")

	respondJSON(w, http.StatusCreated, models.AuthResponse{User: user, Token: token})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		// One message for unknown email and wrong password alike
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Msg("Failed to log in user")
		respondError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}
