package repository

import (
	"context"
	"errors"
	"fmt"

	"pet-tracker-backend/internal/models"
	"pet-tracker-backend/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PetRepository handles database operations for pets. All queries are
// keyed by (id, user_id) so a caller can never reach another owner's rows.
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

// Create creates a new pet
func (r *PetRepository) Create(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (id, user_id, name, type, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		pet.ID, pet.UserID, pet.Name, pet.Type, pet.Age, pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// ListByOwner retrieves all pets for an owner, newest first
func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	query := `
		SELECT id, user_id, name, type, age, created_at, updated_at
		FROM pets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	var pets []*models.Pet
	for rows.Next() {
		var pet models.Pet
		err := rows.Scan(
			&pet.ID, &pet.UserID, &pet.Name, &pet.Type, &pet.Age,
			&pet.CreatedAt, &pet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, &pet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}

	return pets, nil
}

// GetByIDAndOwner retrieves a pet by ID scoped to its owner
func (r *PetRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Pet, error) {
	query := `
		SELECT id, user_id, name, type, age, created_at, updated_at
		FROM pets
		WHERE id = $1 AND user_id = $2
	`
	var pet models.Pet
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&pet.ID, &pet.UserID, &pet.Name, &pet.Type, &pet.Age,
		&pet.CreatedAt, &pet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pet not found: %w", services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return &pet, nil
}

// Update persists the pet's current field values, keyed by id and owner
func (r *PetRepository) Update(ctx context.Context, pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = $1, type = $2, age = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`
	result, err := r.db.Exec(ctx, query,
		pet.Name, pet.Type, pet.Age, pet.UpdatedAt, pet.ID, pet.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("pet not found: %w", services.ErrNotFound)
	}
	return nil
}

// Delete removes a pet, keyed by id and owner
func (r *PetRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM pets WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("pet not found: %w", services.ErrNotFound)
	}
	return nil
}
