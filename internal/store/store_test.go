package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if err := settings.Set("pinch.threshold", "35"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := settings.Get("pinch.threshold")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "35" {
		t.Errorf("Get() = %q, want %q", got, "35")
	}
}

func TestSettingsSetReplaces(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if err := settings.Set("pointer.smoothing", "7"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := settings.Set("pointer.smoothing", "10"); err != nil {
		t.Fatalf("Set() replace error = %v", err)
	}

	got, err := settings.Get("pointer.smoothing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "10" {
		t.Errorf("Get() = %q, want %q", got, "10")
	}
}

func TestSettingsGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Settings().Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSettingsDelete(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if err := settings.Set("scroll.boost", "15"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := settings.Delete("scroll.boost"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := settings.Get("scroll.boost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing key is not an error.
	if err := settings.Delete("scroll.boost"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestSettingsAll(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	want := map[string]string{
		"pinch.threshold":   "35",
		"pointer.smoothing": "10",
	}
	for k, v := range want {
		if err := settings.Set(k, v); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	got, err := settings.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("All() returned %d settings, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("All()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestProfileCreateAssignsID(t *testing.T) {
	s := newTestStore(t)

	p := &CalibrationProfile{
		Name:   "left-handed",
		Config: json.RawMessage(`{"pinch_threshold": 35}`),
	}
	if err := s.Profiles().Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if p.ID == "" {
		t.Error("Create() left ID empty")
	}
	if p.CreatedAt.IsZero() {
		t.Error("Create() left CreatedAt zero")
	}
}

func TestProfileGetByID(t *testing.T) {
	s := newTestStore(t)
	profiles := s.Profiles()

	p := &CalibrationProfile{
		Name:   "default",
		Config: json.RawMessage(`{"smoothing": 7}`),
	}
	if err := profiles.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := profiles.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "default" {
		t.Errorf("GetByID().Name = %q, want %q", got.Name, "default")
	}
	if string(got.Config) != `{"smoothing": 7}` {
		t.Errorf("GetByID().Config = %s", got.Config)
	}
}

func TestProfileGetByName(t *testing.T) {
	s := newTestStore(t)
	profiles := s.Profiles()

	p := &CalibrationProfile{Name: "desk-camera"}
	if err := profiles.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := profiles.GetByName("desk-camera")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("GetByName().ID = %q, want %q", got.ID, p.ID)
	}

	if _, err := profiles.GetByName("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByName() of missing profile error = %v, want ErrNotFound", err)
	}
}

func TestProfileNameIsUnique(t *testing.T) {
	s := newTestStore(t)
	profiles := s.Profiles()

	if err := profiles.Create(&CalibrationProfile{Name: "default"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := profiles.Create(&CalibrationProfile{Name: "default"}); err == nil {
		t.Error("Create() with duplicate name should fail")
	}
}

func TestProfileList(t *testing.T) {
	s := newTestStore(t)
	profiles := s.Profiles()

	for _, name := range []string{"one", "two", "three"} {
		if err := profiles.Create(&CalibrationProfile{Name: name}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	got, err := profiles.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("List() returned %d profiles, want 3", len(got))
	}
}

func TestProfileUpdate(t *testing.T) {
	s := newTestStore(t)
	profiles := s.Profiles()

	p := &CalibrationProfile{Name: "default"}
	if err := profiles.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	p.Name = "renamed"
	p.Config = json.RawMessage(`{"boost": 20}`)
	if err := profiles.Update(p); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := profiles.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("updated Name = %q, want %q", got.Name, "renamed")
	}
	if string(got.Config) != `{"boost": 20}` {
		t.Errorf("updated Config = %s", got.Config)
	}
}

func TestProfileUpdateMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Profiles().Update(&CalibrationProfile{ID: "no-such-id", Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestProfileDelete(t *testing.T) {
	s := newTestStore(t)
	profiles := s.Profiles()

	p := &CalibrationProfile{Name: "default"}
	if err := profiles.Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := profiles.Delete(p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := profiles.GetByID(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := profiles.Delete(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() of missing profile error = %v, want ErrNotFound", err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s1, err := New(dbPath)
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	if err := s1.Settings().Set("key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s1.Close()

	// Reopening an existing database must keep its data.
	s2, err := New(dbPath)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	defer s2.Close()

	got, err := s2.Settings().Get("key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "value" {
		t.Errorf("Get() = %q, want %q", got, "value")
	}
}
