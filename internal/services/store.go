package services

import (
	"context"
	"errors"

	"pet-tracker-backend/internal/models"
)

// Store errors returned by both the postgres and the in-memory repositories.
var (
	// ErrNotFound indicates the requested row does not exist under the
	// given predicate.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint was violated.
	ErrDuplicate = errors.New("duplicate key")
)

// UserStore provides persistence for users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// PetStore provides persistence for pets. Every lookup or mutation is
// keyed by both the pet id and the owner id; there is no unscoped access.
type PetStore interface {
	Create(ctx context.Context, pet *models.Pet) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id, ownerID string) error
}
