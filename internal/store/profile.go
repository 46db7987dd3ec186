package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CalibrationProfile is a named snapshot of the gesture tuning config,
// stored as JSON so new tuning fields need no schema change.
type CalibrationProfile struct {
	ID        string
	Name      string
	Config    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRepository provides CRUD operations for calibration profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile. An empty ID is assigned a fresh UUID.
func (r *ProfileRepository) Create(p *CalibrationProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	config := p.Config
	if config == nil {
		config = json.RawMessage("{}")
	}

	_, err := r.db.Exec(
		`INSERT INTO calibration_profiles (id, name, config, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(config), p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*CalibrationProfile, error) {
	p := &CalibrationProfile{}
	var config string

	err := r.db.QueryRow(
		`SELECT id, name, config, created_at, updated_at
		 FROM calibration_profiles WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &config, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Config = json.RawMessage(config)
	return p, nil
}

// GetByName retrieves a profile by its unique name.
func (r *ProfileRepository) GetByName(name string) (*CalibrationProfile, error) {
	p := &CalibrationProfile{}
	var config string

	err := r.db.QueryRow(
		`SELECT id, name, config, created_at, updated_at
		 FROM calibration_profiles WHERE name = ?`,
		name,
	).Scan(&p.ID, &p.Name, &config, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Config = json.RawMessage(config)
	return p, nil
}

// List retrieves all profiles, newest first.
func (r *ProfileRepository) List() ([]*CalibrationProfile, error) {
	rows, err := r.db.Query(
		`SELECT id, name, config, created_at, updated_at
		 FROM calibration_profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*CalibrationProfile
	for rows.Next() {
		p := &CalibrationProfile{}
		var config string

		if err := rows.Scan(&p.ID, &p.Name, &config, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}

		p.Config = json.RawMessage(config)
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile's name and config.
func (r *ProfileRepository) Update(p *CalibrationProfile) error {
	config := p.Config
	if config == nil {
		config = json.RawMessage("{}")
	}

	result, err := r.db.Exec(
		`UPDATE calibration_profiles SET name = ?, config = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, string(config), time.Now(), p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a profile by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM calibration_profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
