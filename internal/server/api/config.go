// Package api provides HTTP API handlers for the virtual mouse diagnostics server.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/osamah-s7s/virtualmouse/internal/store"
)

// ConfigHandler handles HTTP requests for persisted tuning overrides.
type ConfigHandler struct {
	store *store.Store
}

// NewConfigHandler creates a new ConfigHandler with the given store.
func NewConfigHandler(s *store.Store) *ConfigHandler {
	return &ConfigHandler{store: s}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeHTTP implements the http.Handler interface.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get handles GET /api/config and returns all stored overrides.
func (h *ConfigHandler) get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Settings().All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// put handles PUT /api/config. The body is a flat key-value object; each
// pair replaces the stored override for that key. Overrides take effect on
// the next start.
func (h *ConfigHandler) put(w http.ResponseWriter, r *http.Request) {
	var overrides map[string]string
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	for key, value := range overrides {
		if err := h.store.Settings().Set(key, value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to store setting")
			return
		}
	}

	settings, err := h.store.Settings().All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
