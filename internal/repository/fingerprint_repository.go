package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/geopick-backend-go/internal/database"
	"github.com/jengzang/geopick-backend-go/internal/models"
)

// FingerprintRepository handles database operations for location
// fingerprints. It owns the I/O side of the persistent history: the
// engine only sees the in-memory ring.
type FingerprintRepository struct {
	db *sql.DB
}

// NewFingerprintRepository creates a new fingerprint repository
func NewFingerprintRepository(db *sql.DB) *FingerprintRepository {
	return &FingerprintRepository{db: db}
}

// LoadRecent retrieves the newest limit fingerprints, oldest first, ready
// to seed a session's history ring
func (r *FingerprintRepository) LoadRecent(limit int) ([]models.Fingerprint, error) {
	rows, err := r.db.Query(`SELECT imagery_id, loc_hash, province, cluster_id, created_at
		FROM (
			SELECT imagery_id, loc_hash, province, cluster_id, created_at, id
			FROM fingerprints ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load fingerprints: %w", err)
	}
	defer rows.Close()

	var fps []models.Fingerprint
	for rows.Next() {
		var fp models.Fingerprint
		var createdAt int64
		if err := rows.Scan(&fp.ImageryID, &fp.LocationHash, &fp.Province, &fp.ClusterID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan fingerprint: %w", err)
		}
		fp.CreatedAt = time.Unix(createdAt, 0)
		fps = append(fps, fp)
	}
	return fps, rows.Err()
}

// Save persists one fingerprint
func (r *FingerprintRepository) Save(fp models.Fingerprint) error {
	_, err := r.db.Exec(`INSERT INTO fingerprints (imagery_id, loc_hash, province, cluster_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		fp.ImageryID, fp.LocationHash, fp.Province, fp.ClusterID, fp.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save fingerprint: %w", err)
	}
	return nil
}

// SaveAndTrim persists one fingerprint and evicts everything past keep in
// a single transaction, so a crash between the insert and the trim cannot
// leave the table over cap
func (r *FingerprintRepository) SaveAndTrim(fp models.Fingerprint, keep int) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO fingerprints (imagery_id, loc_hash, province, cluster_id, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			fp.ImageryID, fp.LocationHash, fp.Province, fp.ClusterID, fp.CreatedAt.Unix()); err != nil {
			return fmt.Errorf("failed to save fingerprint: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM fingerprints WHERE id NOT IN (
			SELECT id FROM fingerprints ORDER BY id DESC LIMIT ?)`, keep); err != nil {
			return fmt.Errorf("failed to trim fingerprints: %w", err)
		}
		return nil
	})
}

// Clear removes every fingerprint (explicit reset only)
func (r *FingerprintRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM fingerprints`)
	if err != nil {
		return fmt.Errorf("failed to clear fingerprints: %w", err)
	}
	return nil
}
