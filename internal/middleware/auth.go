package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-tracker-backend/internal/services"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware creates a middleware that requires a valid bearer token.
// Verified claims are attached to the request context for downstream use.
func AuthMiddleware(authService *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := authService.VerifyToken(parts[1])
			if err != nil {
				respondError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the authenticated identity from context. Returns nil
// when the request did not pass AuthMiddleware.
func GetClaims(ctx context.Context) *services.Claims {
	claims, ok := ctx.Value(claimsKey).(*services.Claims)
	if !ok {
		return nil
	}
	return claims
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
