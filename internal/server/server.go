// Package server exposes the toolkit's actions over HTTP. Every action is a
// synchronous pipeline: the response is not written until the pipeline has
// run to completion or failed.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/config"
	"creator-toolkit/internal/keywords"
	"creator-toolkit/internal/monitoring"
	"creator-toolkit/internal/research"
	"creator-toolkit/internal/session"
	"creator-toolkit/internal/thumbnails"
)

const sessionHeader = "X-Session-ID"

type Server struct {
	cfg        *config.Config
	store      *session.Store
	researcher *research.Researcher
	completer  ai.Completer
	generator  *keywords.Generator
	thumbs     *thumbnails.Helper
	monitor    *monitoring.Monitor
	log        *slog.Logger
}

func New(
	cfg *config.Config,
	store *session.Store,
	researcher *research.Researcher,
	completer ai.Completer,
	generator *keywords.Generator,
	thumbs *thumbnails.Helper,
	monitor *monitoring.Monitor,
	log *slog.Logger,
) *Server {
	return &Server{
		cfg:        cfg,
		store:      store,
		researcher: researcher,
		completer:  completer,
		generator:  generator,
		thumbs:     thumbs,
		monitor:    monitor,
		log:        log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)

	r.Route("/api", func(r chi.Router) {
		r.Post("/research/search", s.handleResearchSearch)
		r.Post("/research/insight", s.handleResearchInsight)
		r.Post("/keywords/analyze", s.handleKeywordsAnalyze)
		r.Post("/titles/optimise", s.handleTitlesOptimise)
		r.Post("/descriptions/generate", s.handleDescriptionGenerate)
		r.Post("/descriptions/revise", s.handleDescriptionRevise)
		r.Post("/thumbnails/concepts", s.handleThumbnailConcepts)
		r.Post("/thumbnails/generate", s.handleThumbnailGenerate)
	})

	r.Handle("/thumbnails/*", http.StripPrefix("/thumbnails/",
		http.FileServer(http.Dir(s.thumbs.Dir()))))

	return r
}

// sessionID resolves the caller's session, creating one when the header is
// absent or stale, and echoes the ID back so the client can carry it forward.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	id := s.store.GetOrCreate(r.Header.Get(sessionHeader))
	w.Header().Set(sessionHeader, id)
	return id
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.monitor.IsHealthy() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"monitor":  s.monitor.Status(),
		"sessions": s.store.Len(),
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw,omitempty"`
}

// fail records the outcome and writes the error body. Malformed model output
// is surfaced with the raw text attached so the caller can diagnose it.
func (s *Server) fail(w http.ResponseWriter, action string, start time.Time, status int, err error) {
	s.monitor.RecordFailure(action, err, time.Since(start))

	resp := errorResponse{Error: err.Error()}
	var malformed *ai.MalformedOutputError
	if errors.As(err, &malformed) {
		status = http.StatusBadGateway
		resp.Raw = malformed.Raw
	}
	writeJSON(w, status, resp)
}

func (s *Server) ok(w http.ResponseWriter, action string, start time.Time, payload any) {
	s.monitor.RecordSuccess(action, time.Since(start))
	writeJSON(w, http.StatusOK, payload)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
