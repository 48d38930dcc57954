package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the fingerprint schema if it does not exist
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS fingerprints (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		imagery_id TEXT NOT NULL,
		loc_hash TEXT NOT NULL,
		province TEXT NOT NULL,
		cluster_id TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_fingerprints_imagery ON fingerprints(imagery_id);
	CREATE INDEX IF NOT EXISTS idx_fingerprints_hash ON fingerprints(loc_hash);`)
	if err != nil {
		return fmt.Errorf("failed to migrate fingerprint schema: %w", err)
	}
	return nil
}
