// Package memory provides map-backed implementations of the service
// stores. It is used when no DATABASE_URL is configured and by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"pet-tracker-backend/internal/models"
	"pet-tracker-backend/internal/services"
)

// UserRepository is an in-memory services.UserStore
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

// Create stores a new user, enforcing email uniqueness
func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return services.ErrDuplicate
	}
	u := *user
	r.byID[u.ID] = &u
	r.byEmail[u.Email] = &u
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[email]
	if !ok {
		return nil, services.ErrNotFound
	}
	u := *user
	return &u, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	u := *user
	return &u, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

type petRecord struct {
	pet *models.Pet
	seq int
}

// PetRepository is an in-memory services.PetStore
type PetRepository struct {
	mu   sync.RWMutex
	pets map[string]*petRecord
	seq  int
}

// NewPetRepository creates an empty in-memory pet repository
func NewPetRepository() *PetRepository {
	return &PetRepository{pets: make(map[string]*petRecord)}
}

// Create stores a new pet
func (r *PetRepository) Create(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *pet
	r.seq++
	r.pets[p.ID] = &petRecord{pet: &p, seq: r.seq}
	return nil
}

// ListByOwner returns the owner's pets, newest first. Ties on created_at
// fall back to insertion order.
func (r *PetRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recs []*petRecord
	for _, rec := range r.pets {
		if rec.pet.UserID == ownerID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].pet.CreatedAt.Equal(recs[j].pet.CreatedAt) {
			return recs[i].seq > recs[j].seq
		}
		return recs[i].pet.CreatedAt.After(recs[j].pet.CreatedAt)
	})

	pets := make([]*models.Pet, 0, len(recs))
	for _, rec := range recs {
		p := *rec.pet
		pets = append(pets, &p)
	}
	return pets, nil
}

// GetByIDAndOwner retrieves a pet scoped to its owner
func (r *PetRepository) GetByIDAndOwner(_ context.Context, id, ownerID string) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.pets[id]
	if !ok || rec.pet.UserID != ownerID {
		return nil, services.ErrNotFound
	}
	p := *rec.pet
	return &p, nil
}

// Update replaces the stored pet, keyed by id and owner
func (r *PetRepository) Update(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.pets[pet.ID]
	if !ok || rec.pet.UserID != pet.UserID {
		return services.ErrNotFound
	}
	p := *pet
	rec.pet = &p
	return nil
}

// Delete removes a pet, keyed by id and owner
func (r *PetRepository) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.pets[id]
	if !ok || rec.pet.UserID != ownerID {
		return services.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}
