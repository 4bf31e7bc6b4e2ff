// Package api provides HTTP API capabilities for the sopcalc engine.
// This is a capability module that can be enabled via the CLI or used programmatically.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Nusri7/sopcalc/engine"
	"github.com/Nusri7/sopcalc/engine/formula"
)

// Config holds the API server configuration
type Config struct {
	Port             string
	LogPrefix        string
	Canonical        []string
	ZeroBaseFallback bool
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up the API endpoints
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/summary", s.handleSummary)
	s.mux.HandleFunc("/evaluate", s.handleEvaluate)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server
// This allows the server to be used with custom http.Server configurations
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) options() engine.Options {
	return engine.Options{
		Canonical:        s.config.Canonical,
		ZeroBaseFallback: s.config.ZeroBaseFallback,
	}
}

// handleSummary derives the merged metric table from a posted dataset.
// Each request gets its own workspace, so the engine's single-writer rule
// holds without locking.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived summary request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ws, err := engine.Load(r.Body, s.options())
	if err != nil {
		log.Printf("%sError decoding dataset: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not decode dataset: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"summary": ws.Summary()})
}

// evaluateRequest carries a dataset plus the single entry to evaluate.
type evaluateRequest struct {
	engine.Payload
	Entry formula.Entry `json:"entry"`
}

// evaluateResponse mirrors formula.Result with a validity flag; a failed
// entry is a 200 with ok=false, not an HTTP error.
type evaluateResponse struct {
	OK      bool     `json:"ok"`
	Total   string   `json:"total,omitempty"`
	Columns []string `json:"columns,omitempty"`
	Trail   string   `json:"trail,omitempty"`
}

// handleEvaluate evaluates one manual entry against a posted dataset.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived evaluate request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("%sError decoding request: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not decode request: "+err.Error(), http.StatusBadRequest)
		return
	}

	ws := engine.Build(req.Payload, s.options())
	result, ok := ws.EvaluateEntry(req.Entry)

	resp := evaluateResponse{OK: ok}
	if ok {
		resp.Total = result.Total.String()
		resp.Columns = result.Columns
		resp.Trail = result.Trail
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
