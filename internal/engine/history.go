package engine

import "github.com/jengzang/geopick-backend-go/internal/models"

// HistoryCap bounds the persistent fingerprint ring; the oldest entry is
// evicted once a 201st fingerprint arrives
const HistoryCap = 200

// HistoryReason identifies which fingerprint field matched a candidate
type HistoryReason string

const (
	HistoryNone        HistoryReason = ""
	HistorySeenImagery HistoryReason = "seen_imagery"
	HistorySeenHash    HistoryReason = "seen_hash"
)

// HistoryRing is the in-memory cross-session fingerprint buffer. Loading
// and flushing it is the persistence collaborator's job; the engine only
// manipulates the ring.
type HistoryRing struct {
	entries []models.Fingerprint
}

// NewHistoryRing builds a ring pre-populated from a previous session,
// keeping only the newest HistoryCap entries
func NewHistoryRing(existing []models.Fingerprint) *HistoryRing {
	h := &HistoryRing{}
	for _, fp := range existing {
		h.Record(fp)
	}
	return h
}

// Check reports whether the imagery id or location hash was already
// surfaced in a prior session
func (h *HistoryRing) Check(imageryID, locationHash string) HistoryReason {
	for i := range h.entries {
		if h.entries[i].ImageryID == imageryID {
			return HistorySeenImagery
		}
		if h.entries[i].LocationHash == locationHash {
			return HistorySeenHash
		}
	}
	return HistoryNone
}

// Record appends a fingerprint, evicting the oldest past HistoryCap
func (h *HistoryRing) Record(fp models.Fingerprint) {
	h.entries = append(h.entries, fp)
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[1:]
	}
}

// Clear drops every fingerprint
func (h *HistoryRing) Clear() {
	h.entries = nil
}

// Len returns the current number of fingerprints
func (h *HistoryRing) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the ring, oldest first, for persistence
func (h *HistoryRing) Entries() []models.Fingerprint {
	return append([]models.Fingerprint(nil), h.entries...)
}
