package models

import "time"

// User represents a registered account
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pet represents an animal record owned by a user
type Pet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      *string   `json:"type"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignupRequest is the payload for POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreatePetRequest is the payload for POST /api/pets
type CreatePetRequest struct {
	Name string  `json:"name" validate:"required"`
	Type *string `json:"type"`
	Age  *int    `json:"age" validate:"omitempty,gte=0"`
}

// UpdatePetRequest is the payload for PUT /api/pets/{id}.
// Nil fields keep their current value.
type UpdatePetRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
	Type *string `json:"type"`
	Age  *int    `json:"age" validate:"omitempty,gte=0"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
