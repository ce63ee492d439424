package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-tracker-backend/internal/handlers"
	"pet-tracker-backend/internal/models"
	"pet-tracker-backend/internal/repository/memory"
	"pet-tracker-backend/internal/router"
	"pet-tracker-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	authService := services.NewAuthService(memory.NewUserRepository(), "test-secret", 7*24*time.Hour)
	petService := services.NewPetService(memory.NewPetRepository())

	h := router.New(
		handlers.NewAuthHandler(authService),
		handlers.NewPetHandler(petService),
		authService,
	)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

func signup(t *testing.T, baseURL, name, email, password string) (userID, token string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/auth/signup", "", map[string]any{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, st, "signup failed: %s", string(body))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	return resp.User.ID, resp.Token
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, st)

	var health map[string]string
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health["status"])
	assert.NotEmpty(t, health["time"])
}

func TestSignupValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing name", map[string]any{"email": "a@x.com", "password": "secret1"}, "name"},
		{"bad email", map[string]any{"name": "A", "email": "not-an-email", "password": "secret1"}, "email"},
		{"short password", map[string]any{"name": "A", "email": "a@x.com", "password": "12345"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/api/auth/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, st)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Contains(t, resp.Fields, tt.field)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "Ann", "ann@x.com", "secret1")

	st, _ := doReq(t, ts.URL, "POST", "/api/auth/signup", "", map[string]any{
		"name": "Ann Again", "email": "ann@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, st)
}

func TestLoginEnumerationResistance(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "Ann", "ann@x.com", "secret1")

	// Wrong password and unknown email must be indistinguishable
	stWrong, bodyWrong := doReq(t, ts.URL, "POST", "/api/auth/login", "", map[string]any{
		"email": "ann@x.com", "password": "wrongpass",
	})
	stUnknown, bodyUnknown := doReq(t, ts.URL, "POST", "/api/auth/login", "", map[string]any{
		"email": "nobody@x.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, stWrong)
	assert.Equal(t, http.StatusUnauthorized, stUnknown)
	assert.JSONEq(t, string(bodyWrong), string(bodyUnknown))
}

func TestLoginSuccess(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "Ann", "ann@x.com", "secret1")

	st, body := doReq(t, ts.URL, "POST", "/api/auth/login", "", map[string]any{
		"email": "ann@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, st)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ann@x.com", resp.User.Email)

	// The fresh token opens the protected surface
	st, _ = doReq(t, ts.URL, "GET", "/api/pets", resp.Token, nil)
	assert.Equal(t, http.StatusOK, st)
}

func TestPetsRequireToken(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := doReq(t, ts.URL, "GET", "/api/pets", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, st)
		})
	}

	t.Run("malformed header", func(t *testing.T) {
		req, err := http.NewRequest("GET", ts.URL+"/api/pets", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Token abc")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestPetLifecycle(t *testing.T) {
	ts := newTestServer(t)

	_, annToken := signup(t, ts.URL, "Ann", "ann@x.com", "secret1")
	_, bobToken := signup(t, ts.URL, "Bob", "bob@x.com", "secret2")

	// Ann creates a pet
	st, body := doReq(t, ts.URL, "POST", "/api/pets", annToken, map[string]any{
		"name": "Mochi", "type": "Cat", "age": 3,
	})
	require.Equal(t, http.StatusCreated, st, "create failed: %s", string(body))

	var pet models.Pet
	require.NoError(t, json.Unmarshal(body, &pet))
	require.NotEmpty(t, pet.ID)
	assert.Equal(t, "Mochi", pet.Name)
	require.NotNil(t, pet.Type)
	assert.Equal(t, "Cat", *pet.Type)
	require.NotNil(t, pet.Age)
	assert.Equal(t, 3, *pet.Age)
	assert.False(t, pet.CreatedAt.IsZero())

	// Ann sees it in her list
	st, body = doReq(t, ts.URL, "GET", "/api/pets", annToken, nil)
	require.Equal(t, http.StatusOK, st)
	var pets []models.Pet
	require.NoError(t, json.Unmarshal(body, &pets))
	require.Len(t, pets, 1)
	assert.Equal(t, pet.ID, pets[0].ID)

	// Bob sees nothing of it
	st, body = doReq(t, ts.URL, "GET", "/api/pets", bobToken, nil)
	require.Equal(t, http.StatusOK, st)
	var bobPets []models.Pet
	require.NoError(t, json.Unmarshal(body, &bobPets))
	assert.Empty(t, bobPets)

	st, _ = doReq(t, ts.URL, "GET", "/api/pets/"+pet.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "PUT", "/api/pets/"+pet.ID, bobToken, map[string]any{"name": "Stolen"})
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "DELETE", "/api/pets/"+pet.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, st)

	// Ann deletes it
	st, _ = doReq(t, ts.URL, "DELETE", "/api/pets/"+pet.ID, annToken, nil)
	assert.Equal(t, http.StatusNoContent, st)

	st, _ = doReq(t, ts.URL, "DELETE", "/api/pets/"+pet.ID, annToken, nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, body = doReq(t, ts.URL, "GET", "/api/pets", annToken, nil)
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &pets))
	assert.Empty(t, pets)
}

func TestPetPartialUpdate(t *testing.T) {
	ts := newTestServer(t)

	_, token := signup(t, ts.URL, "Ann", "ann@x.com", "secret1")

	st, body := doReq(t, ts.URL, "POST", "/api/pets", token, map[string]any{
		"name": "Rex", "type": "Dog", "age": 3,
	})
	require.Equal(t, http.StatusCreated, st)
	var created models.Pet
	require.NoError(t, json.Unmarshal(body, &created))

	time.Sleep(5 * time.Millisecond)

	st, body = doReq(t, ts.URL, "PUT", "/api/pets/"+created.ID, token, map[string]any{
		"age": 4,
	})
	require.Equal(t, http.StatusOK, st, "update failed: %s", string(body))

	var updated models.Pet
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Rex", updated.Name)
	require.NotNil(t, updated.Type)
	assert.Equal(t, "Dog", *updated.Type)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 4, *updated.Age)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestPetCreateValidation(t *testing.T) {
	ts := newTestServer(t)

	_, token := signup(t, ts.URL, "Ann", "ann@x.com", "secret1")

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing name", map[string]any{"type": "Cat"}, "name"},
		{"negative age", map[string]any{"name": "Mochi", "age": -1}, "age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/api/pets", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, st)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Contains(t, resp.Fields, tt.field)
		})
	}
}
