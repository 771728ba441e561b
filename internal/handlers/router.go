package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mW "github.com/mywallet/backend/internal/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	Auth           *AuthHandler
	Values         *ValueHandler
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires the public auth routes and the token protected value routes.
func NewRouter(cfg RouterConfig) chi.Router {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mW.SecurityHeaders)
	r.Use(mW.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/auth/sign-up", cfg.Auth.SignUp)
	r.Post("/auth/sign-in", cfg.Auth.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(mW.RequireToken)

		r.Post("/values", cfg.Values.CreateValue)
		r.Get("/values", cfg.Values.ListValues)
		r.Put("/values/{id}", cfg.Values.UpdateValue)
		r.Delete("/values/{id}", cfg.Values.DeleteValue)
	})

	return r
}
