// Package server provides the diagnostics HTTP server for the virtual
// mouse: health, runtime status, persisted tuning and a live landmark feed.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/osamah-s7s/virtualmouse/internal/capture"
	"github.com/osamah-s7s/virtualmouse/internal/detector"
	"github.com/osamah-s7s/virtualmouse/internal/server/api"
	"github.com/osamah-s7s/virtualmouse/internal/store"
)

// StatusSource reports the live state of the gesture pipeline.
type StatusSource interface {
	Enabled() bool
	Mode() string
}

// Config holds the server configuration.
type Config struct {
	Store    *store.Store
	Camera   capture.Camera
	Detector detector.Detector
	Status   StatusSource
}

// Server represents the diagnostics HTTP server.
type Server struct {
	config    Config
	mux       *http.ServeMux
	start     time.Time
	landmarks *LandmarksHandler
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/status", s.handleStatus)

	if s.config.Store != nil {
		s.mux.Handle("/api/config", api.NewConfigHandler(s.config.Store))

		profilesHandler := api.NewProfilesHandler(s.config.Store)
		s.mux.Handle("/api/profiles", profilesHandler)
		s.mux.Handle("/api/profiles/", profilesHandler)
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.Camera != nil && s.config.Detector != nil {
		s.landmarks = NewLandmarksHandler(s.config.Detector, s.config.Camera)
		s.mux.Handle("/api/landmarks", s.landmarks)
	}
}

// Close stops the server's background work. It does not close the store,
// camera or detector, which the caller owns.
func (s *Server) Close() {
	if s.landmarks != nil {
		s.landmarks.Close()
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	writeJSON(w, response)
}

// handleStatus handles GET requests to /api/status, reporting the live
// pipeline state.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"uptime": time.Since(s.start).String(),
	}

	if s.config.Status != nil {
		response["enabled"] = s.config.Status.Enabled()
		response["mode"] = s.config.Status.Mode()
	}

	writeJSON(w, response)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
