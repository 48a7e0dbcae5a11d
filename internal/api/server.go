package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/scholardoc/internal/academic"
	"github.com/dgallion1/scholardoc/internal/config"
)

// Server is the HTTP API server for scholardoc.
type Server struct {
	router   chi.Router
	analyzer *academic.Analyzer
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(analyzer *academic.Analyzer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		analyzer: analyzer,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Document endpoints. Auth applies only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Route("/api/document", func(r chi.Router) {
			r.Get("/metadata", s.handleMetadata)
			r.Get("/text", s.handleText)
			r.Get("/page", s.handlePage)
			r.Get("/chunks", s.handleChunks)
			r.Get("/sections", s.handleSections)
			r.Get("/sections/key", s.handleKeySections)
			r.Get("/sections/summary", s.handleSectionSummary)
			r.Get("/abstract", s.handleAbstract)
			r.Get("/citations", s.handleCitations)
			r.Get("/citations/summary", s.handleCitationSummary)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
