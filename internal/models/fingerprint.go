package models

import "time"

// Fingerprint is the minimal identifying tuple of a minted location,
// persisted across sessions so the minter never re-surfaces a place a
// player has already seen
type Fingerprint struct {
	ImageryID    string    `json:"imagery_id" db:"imagery_id"`
	LocationHash string    `json:"location_hash" db:"loc_hash"`
	Province     string    `json:"province" db:"province"`
	ClusterID    string    `json:"cluster_id" db:"cluster_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
