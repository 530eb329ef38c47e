// Package server exposes the candidate engine over a small JSON API.
//
// Routes:
//   - GET  /healthz          liveness plus word list size.
//   - POST /api/candidates   filter and rank the word list for a constraint set.
//
// The word list is shared read-only across requests; each request builds its
// own constraint set.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/wordlehelp/internal/constraint"
	"github.com/verte-zerg/wordlehelp/internal/solver"
)

const maxBodyBytes = 1 << 16

// Server bundles the router and the word list it serves.
type Server struct {
	r     *chi.Mux
	words []string
	limit int
}

// New constructs a Server over words. limit caps the number of words returned
// when a request does not ask for fewer; zero means no cap.
func New(words []string, limit int) *Server {
	s := &Server{r: chi.NewRouter(), words: words, limit: limit}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/healthz", s.handleHealth)
	s.r.Post("/api/candidates", s.handleCandidates)
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	return s
}

// Router exposes the router for tests and embedding.
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until the listener fails.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

type healthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Words: len(s.words)})
}

type candidatesRequest struct {
	Known     string   `json:"known"`
	Misplaced []string `json:"misplaced"`
	Excluded  string   `json:"excluded"`
	Limit     int      `json:"limit"`
}

type candidatesResponse struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req candidatesRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	set, err := constraint.Parse(req.Known, req.Misplaced, req.Excluded)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := solver.Candidates(s.words, set)
	words := res.Words
	if limit := s.effectiveLimit(req.Limit); limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	writeJSON(w, http.StatusOK, candidatesResponse{Count: res.Count, Words: words})
}

func (s *Server) effectiveLimit(requested int) int {
	switch {
	case requested > 0 && (s.limit <= 0 || requested < s.limit):
		return requested
	default:
		return s.limit
	}
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
