package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/checkin"
	"github.com/hongminglow/field-checkin/internal/config"
	"github.com/hongminglow/field-checkin/internal/http/handlers"
	"github.com/hongminglow/field-checkin/internal/middleware"
	"github.com/hongminglow/field-checkin/internal/report"
	"github.com/hongminglow/field-checkin/internal/storage"
)

// Store is the persistence the API needs.
type Store interface {
	storage.UserStore
	storage.CheckinStore
	storage.ReportStore
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store Store) *Server {
	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authn := middleware.RequireAuth(tokens)
	handlers.NewAuthHandler(store, tokens).Register(mux, authn)
	handlers.NewCheckinHandler(checkin.NewService(store)).Register(mux, authn)
	handlers.NewReportHandler(report.NewService(store)).Register(mux, authn)

	handler := middleware.Chain(mux, middleware.Logging, middleware.CORS(cfg.CORSOrigins))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler exposes the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
