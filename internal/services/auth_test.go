package services_test

import (
	"context"
	"testing"
	"time"

	"pet-tracker-backend/internal/models"
	"pet-tracker-backend/internal/repository/memory"
	"pet-tracker-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService(ttl time.Duration) (*services.AuthService, *memory.UserRepository) {
	users := memory.NewUserRepository()
	return services.NewAuthService(users, testSecret, ttl), users
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(time.Hour)

	user, token, err := svc.Signup(ctx, models.SignupRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	// Issued token verifies and carries the account identity
	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@x.com", claims.Email)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(time.Hour)

	_, _, err := svc.Signup(ctx, models.SignupRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		email string
	}{
		{"same email", "ann@x.com"},
		{"different case", "Ann@X.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Signup(ctx, models.SignupRequest{
				Name: "Other", Email: tt.email, Password: "secret2",
			})
			assert.ErrorIs(t, err, services.ErrEmailTaken)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(time.Hour)

	_, _, err := svc.Signup(ctx, models.SignupRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, token, err := svc.Login(ctx, models.LoginRequest{
			Email: "ann@x.com", Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", user.Email)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("case-insensitive email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.LoginRequest{
			Email: "ANN@x.com", Password: "secret1",
		})
		assert.NoError(t, err)
	})

	// Unknown email and wrong password fail identically
	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.LoginRequest{
			Email: "ann@x.com", Password: "wrongpass",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.LoginRequest{
			Email: "nobody@x.com", Password: "secret1",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(time.Hour)

	_, token, err := svc.Signup(ctx, models.SignupRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.VerifyToken("not-a-token")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.VerifyToken(token + "x")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := services.NewAuthService(memory.NewUserRepository(), "other-secret", time.Hour)
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredSvc, _ := newAuthService(-time.Minute)
		_, expired, err := expiredSvc.Signup(ctx, models.SignupRequest{
			Name: "Bob", Email: "bob@x.com", Password: "secret1",
		})
		require.NoError(t, err)

		_, err = expiredSvc.VerifyToken(expired)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
