package server

import (
	"context"
	"net/http"
	"os"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ayush7932singh/HealthEase/internal/auth"
	"github.com/ayush7932singh/HealthEase/internal/config"
	"github.com/ayush7932singh/HealthEase/internal/http/handlers"
	"github.com/ayush7932singh/HealthEase/internal/middleware"
	"github.com/ayush7932singh/HealthEase/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Routes(cfg, store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Routes builds the full handler chain: request id, real ip, access log and
// panic recovery around CORS and the route table.
func Routes(cfg config.Config, store storage.Store) http.Handler {
	mux := http.NewServeMux()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)
	gate := middleware.RequireAuth(tokens, store)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, tokens, cfg.BcryptCost).Register(mux, gate)
	handlers.NewDoctorHandler(store).Register(mux)
	handlers.NewAppointmentHandler(store).Register(mux, gate)
	handlers.NewDashboardHandler(store).Register(mux, gate)
	handlers.NewSeedHandler(store, store, cfg.SeedAdminPassword, cfg.BcryptCost).Register(mux)
	handlers.NewStaticHandler(os.DirFS(cfg.StaticDir)).Register(mux)

	var handler http.Handler = middleware.CORS(cfg.CORSOrigins, mux)
	handler = chimw.Recoverer(handler)
	handler = chimw.Logger(handler)
	handler = chimw.RealIP(handler)
	handler = chimw.RequestID(handler)
	return handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
