package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/osamah-s7s/virtualmouse/internal/store"
)

// fakeStatus is a canned StatusSource for handler tests.
type fakeStatus struct {
	enabled bool
	mode    string
}

func (f *fakeStatus) Enabled() bool { return f.enabled }
func (f *fakeStatus) Mode() string  { return f.mode }

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	srv := New(Config{
		Store:  st,
		Status: &fakeStatus{enabled: true, mode: "move"},
	})
	return srv, st
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestHealthRejectsPost(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["enabled"] != true {
		t.Errorf("enabled = %v, want true", body["enabled"])
	}
	if body["mode"] != "move" {
		t.Errorf("mode = %v, want move", body["mode"])
	}
}

func TestConfigRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := []byte(`{"pinch.threshold": "35", "scroll.boost": "20"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/config", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want %d", w.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/config", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want %d", w.Code, http.StatusOK)
	}

	var got map[string]string
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got["pinch.threshold"] != "35" {
		t.Errorf("pinch.threshold = %q, want %q", got["pinch.threshold"], "35")
	}
	if got["scroll.boost"] != "20" {
		t.Errorf("scroll.boost = %q, want %q", got["scroll.boost"], "20")
	}
}

func TestConfigRejectsInvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/config", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestProfilesCRUD(t *testing.T) {
	srv, _ := newTestServer(t)

	// Create
	payload := []byte(`{"name": "left-handed", "config": {"pinch_threshold": 35}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created profile has no ID")
	}

	// Get
	req = httptest.NewRequest(http.MethodGet, "/api/profiles/"+created.ID, nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want %d", w.Code, http.StatusOK)
	}

	// Update
	payload = []byte(`{"name": "left-handed-wide", "config": {"pinch_threshold": 50}}`)
	req = httptest.NewRequest(http.MethodPut, "/api/profiles/"+created.ID, bytes.NewReader(payload))
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var updated struct {
		Name   string          `json:"name"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("decoding update response: %v", err)
	}
	if updated.Name != "left-handed-wide" {
		t.Errorf("updated name = %q, want left-handed-wide", updated.Name)
	}

	// List
	req = httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var list struct {
		Profiles []struct {
			Name string `json:"name"`
		} `json:"profiles"`
	}
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	if len(list.Profiles) != 1 || list.Profiles[0].Name != "left-handed-wide" {
		t.Errorf("list = %+v, want one profile named left-handed-wide", list.Profiles)
	}

	// Delete
	req = httptest.NewRequest(http.MethodDelete, "/api/profiles/"+created.ID, nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want %d", w.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/profiles/"+created.ID, nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestProfileUpdateMissing(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := []byte(`{"name": "ghost"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/profiles/no-such-id", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestProfileNameConflicts(t *testing.T) {
	srv, _ := newTestServer(t)

	create := func(name string) string {
		t.Helper()
		payload := []byte(`{"name": "` + name + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewReader(payload))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("POST %q status = %d, want %d", name, w.Code, http.StatusCreated)
		}

		var created struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
			t.Fatalf("decoding create response: %v", err)
		}
		return created.ID
	}

	create("default")
	otherID := create("other")

	// Creating a second profile with a taken name conflicts.
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewReader([]byte(`{"name": "default"}`)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate POST status = %d, want %d", w.Code, http.StatusConflict)
	}

	// Renaming onto another profile's name conflicts too.
	req = httptest.NewRequest(http.MethodPut, "/api/profiles/"+otherID, bytes.NewReader([]byte(`{"name": "default"}`)))
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("rename PUT status = %d, want %d", w.Code, http.StatusConflict)
	}

	// Re-saving a profile under its own name is fine.
	req = httptest.NewRequest(http.MethodPut, "/api/profiles/"+otherID, bytes.NewReader([]byte(`{"name": "other"}`)))
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("self-rename PUT status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestProfileCreateRequiresName(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestStreamAbsentWithoutCamera(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stream", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
