package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/gate"
	"github.com/claude/planforge/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	engine  *engine.Engine
	cat     *catalog.Catalog
	db      *storage.DB
	credits *gate.DB
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured. db and credits may
// be nil; the corresponding endpoints then report the feature as disabled.
func New(eng *engine.Engine, cat *catalog.Catalog, db *storage.DB, credits *gate.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		engine:  eng,
		cat:     cat,
		db:      db,
		credits: credits,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Generation and credit endpoints (API key required)
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleGeneratePlan)
		r.Get("/", s.handleQueryPlans)
		r.Get("/{id}", s.handleGetPlan)
	})
	s.router.Route("/api/v1/credits", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/grant", s.handleGrantCredits)
		r.Get("/{userID}", s.handleCreditBalance)
	})

	// Reporting endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/metrics/rejections", s.handleRejectionStats)
	s.router.Get("/api/v1/metrics/corrections", s.handleCorrectionStats)
	s.router.Get("/api/v1/metrics/quality", s.handleQualityStats)
	s.router.Get("/api/v1/metrics/summary", s.handleMetricsSummary)
	s.router.Get("/api/v1/insights", s.handleInsights)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
}
