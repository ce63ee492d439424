package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-tracker-backend/internal/models"

	"github.com/google/uuid"
)

// ErrPetNotFound is returned when a pet does not exist or belongs to a
// different owner. The two cases are indistinguishable on purpose.
var ErrPetNotFound = errors.New("pet not found")

// PetService handles pet-related business logic. The owner id is always
// taken from the verified token, never from client input.
type PetService struct {
	pets PetStore
}

// NewPetService creates a new pet service
func NewPetService(pets PetStore) *PetService {
	return &PetService{pets: pets}
}

// List returns the owner's pets, most recently created first
func (s *PetService) List(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	pets, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	if pets == nil {
		pets = []*models.Pet{}
	}
	return pets, nil
}

// Create persists a new pet owned by ownerID
func (s *PetService) Create(ctx context.Context, ownerID string, req models.CreatePetRequest) (*models.Pet, error) {
	now := time.Now().UTC()
	pet := &models.Pet{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Name:      req.Name,
		Type:      req.Type,
		Age:       req.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return pet, nil
}

// Get returns the pet if it exists and belongs to ownerID
func (s *PetService) Get(ctx context.Context, ownerID, id string) (*models.Pet, error) {
	pet, err := s.pets.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return pet, nil
}

// Update applies the non-nil fields of req to the pet and refreshes its
// updated_at timestamp
func (s *PetService) Update(ctx context.Context, ownerID, id string, req models.UpdatePetRequest) (*models.Pet, error) {
	pet, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Type != nil {
		pet.Type = req.Type
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	pet.UpdatedAt = time.Now().UTC()

	if err := s.pets.Update(ctx, pet); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}
	return pet, nil
}

// Delete removes the pet if it exists and belongs to ownerID
func (s *PetService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.pets.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrPetNotFound
		}
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	return nil
}
