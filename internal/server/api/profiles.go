package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/osamah-s7s/virtualmouse/internal/store"
)

// ProfilesHandler handles HTTP requests for calibration profiles.
type ProfilesHandler struct {
	store *store.Store
}

// NewProfilesHandler creates a new ProfilesHandler with the given store.
func NewProfilesHandler(s *store.Store) *ProfilesHandler {
	return &ProfilesHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests.
// Expected paths: /api/profiles or /api/profiles/{id}
func (h *ProfilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/profiles")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type createProfileRequest struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

type profileResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type listProfilesResponse struct {
	Profiles []profileResponse `json:"profiles"`
}

// toProfileResponse converts a store.CalibrationProfile to a profileResponse.
func toProfileResponse(p *store.CalibrationProfile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Config:    p.Config,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// list handles GET /api/profiles and returns all calibration profiles.
func (h *ProfilesHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	response := listProfilesResponse{
		Profiles: make([]profileResponse, 0, len(profiles)),
	}

	for _, p := range profiles {
		response.Profiles = append(response.Profiles, toProfileResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/profiles/{id} and returns a single profile.
func (h *ProfilesHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// create handles POST /api/profiles and creates a new calibration profile.
func (h *ProfilesHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	if _, err := h.store.Profiles().GetByName(req.Name); err == nil {
		writeError(w, http.StatusConflict, "Profile name already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to check profile name")
		return
	}

	profile := &store.CalibrationProfile{
		Name:   req.Name,
		Config: req.Config,
	}

	if err := h.store.Profiles().Create(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, toProfileResponse(profile))
}

// update handles PUT /api/profiles/{id} and replaces a profile's name and
// config.
func (h *ProfilesHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	// The name stays unique across profiles; renaming onto another
	// profile's name is a conflict.
	if existing, err := h.store.Profiles().GetByName(req.Name); err == nil {
		if existing.ID != id {
			writeError(w, http.StatusConflict, "Profile name already exists")
			return
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to check profile name")
		return
	}

	profile := &store.CalibrationProfile{
		ID:     id,
		Name:   req.Name,
		Config: req.Config,
	}

	if err := h.store.Profiles().Update(profile); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	updated, err := h.store.Profiles().GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(updated))
}

// delete handles DELETE /api/profiles/{id} and removes a profile.
func (h *ProfilesHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Profiles().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
