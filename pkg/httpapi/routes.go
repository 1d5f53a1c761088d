package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// registerRoutes wires all routes into the router.
func (s *Server) registerRoutes(r chi.Router) {
	// Health probes
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	// Metrics endpoint
	r.Get("/metrics", s.handleMetrics)

	// Stats
	r.Get("/api/v1/stats", s.handleStats)
	r.Get("/api/v1/session", s.handleSession)
	r.Get("/api/v1/matches", s.handleListMatches)
	r.Get("/api/v1/matches/{id}", s.handleGetMatch)
}

// handleHealthz is a liveness probe.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz is a readiness probe.
func (s *Server) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleStats returns the dealer's aggregate numbers.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.Summary())
}

// handleSession returns the match being played right now, 404 when the
// table is idle.
func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	active, ok := s.reg.Active()
	if !ok {
		writeError(w, http.StatusNotFound, "no match in progress")
		return
	}
	writeJSON(w, http.StatusOK, active)
}

// handleListMatches returns recent match records, newest first.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, s.reg.Recent(limit))
}

// handleGetMatch returns a single match record by id.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := s.reg.Match(id)
	if !ok {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
