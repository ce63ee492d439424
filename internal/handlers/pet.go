package handlers

import (
	"errors"
	"net/http"

	"pet-tracker-backend/internal/middleware"
	"pet-tracker-backend/internal/models"
	"pet-tracker-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PetHandler handles pet CRUD requests. The owner is always the
// authenticated identity attached by the auth middleware.
type PetHandler struct {
	petService *services.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{
		petService: petService,
	}
}

// List handles GET /api/pets
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	pets, err := h.petService.List(r.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to list pets")
		respondError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, pets)
}

// Create handles POST /api/pets
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req models.CreatePetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pet, err := h.petService.Create(r.Context(), claims.UserID, req)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to create pet")
		respondError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("pet_id", pet.ID).
		Str("user_id", claims.UserID).
		Msg("Pet created")

	respondJSON(w, http.StatusCreated, pet)
}

// Get handles GET /api/pets/{id}
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id := chi.URLParam(r, "id")

	pet, err := h.petService.Get(r.Context(), claims.UserID, id)
	if err != nil {
		h.respondPetError(w, err, claims.UserID, id, "Failed to get pet")
		return
	}

	respondJSON(w, http.StatusOK, pet)
}

// Update handles PUT /api/pets/{id}
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id := chi.URLParam(r, "id")

	var req models.UpdatePetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pet, err := h.petService.Update(r.Context(), claims.UserID, id, req)
	if err != nil {
		h.respondPetError(w, err, claims.UserID, id, "Failed to update pet")
		return
	}

	respondJSON(w, http.StatusOK, pet)
}

// Delete handles DELETE /api/pets/{id}
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.petService.Delete(r.Context(), claims.UserID, id); err != nil {
		h.respondPetError(w, err, claims.UserID, id, "Failed to delete pet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondPetError maps service errors to HTTP responses. A missing pet and
// another owner's pet produce the same 404.
func (h *PetHandler) respondPetError(w http.ResponseWriter, err error, userID, petID, logMsg string) {
	if errors.Is(err, services.ErrPetNotFound) {
		respondError(w, "Pet not found", http.StatusNotFound)
		return
	}
	log.Error().Err(err).Str("user_id", userID).Str("pet_id", petID).Msg(logMsg)
	respondError(w, "Internal server error", http.StatusInternalServerError)
}
