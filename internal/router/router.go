package router

import (
	"net/http"

	"pet-tracker-backend/internal/handlers"
	"pet-tracker-backend/internal/middleware"
	"pet-tracker-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// New builds the HTTP route table. Everything under /api/pets requires a
// valid bearer token; health and auth endpoints are public.
func New(authHandler *handlers.AuthHandler, petHandler *handlers.PetHandler, authService *services.AuthService) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/pets", func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(authService))
			r.Get("/", petHandler.List)
			r.Post("/", petHandler.Create)
			r.Get("/{id}", petHandler.Get)
			r.Put("/{id}", petHandler.Update)
			r.Delete("/{id}", petHandler.Delete)
		})
	})

	return r
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
