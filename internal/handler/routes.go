package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/msomdec/daily-log/internal/service"
	"go.uber.org/zap"
)

// NewRouter wires every HTTP route of the API.
func NewRouter(auth *service.AuthService, logs *service.WorkLogService, store Pinger, corsOrigins []string, logger *zap.Logger) http.Handler {
	authHandler := NewAuthHandler(auth, logger)
	logHandler := NewWorkLogHandler(logs, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", HandleHealthz(store, logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.HandleSignup)
			r.Post("/login", authHandler.HandleLogin)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler { return RequireAuth(auth, next) })
			r.Get("/", logHandler.HandleList)
			r.Post("/", logHandler.HandleCreate)
			r.Put("/{id}", logHandler.HandleUpdate)
			r.Delete("/{id}", logHandler.HandleDelete)
		})
	})

	return r
}
