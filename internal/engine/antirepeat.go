package engine

import (
	"github.com/jengzang/geopick-backend-go/internal/models"
)

// RejectReason identifies which anti-repeat dimension rejected a candidate
type RejectReason string

const (
	RejectNone            RejectReason = ""
	RejectRecentSelection RejectReason = "recent_selection"
	RejectRecentImagery   RejectReason = "recent_imagery"
	RejectRecentHash      RejectReason = "recent_hash"
	RejectRecentCluster   RejectReason = "recent_cluster"
	RejectRecentProvince  RejectReason = "recent_province"
)

// WindowSizes configures the per-dimension sliding windows. Every size
// must stay below the dataset's unique-value cardinality for that
// dimension or selection deadlocks; New clamps them accordingly.
type WindowSizes struct {
	Selections int `json:"selections"`
	Imagery    int `json:"imagery"`
	Hashes     int `json:"hashes"`
	Clusters   int `json:"clusters"`
	Provinces  int `json:"provinces"`
}

// DefaultWindowSizes returns the tuned production window sizes
func DefaultWindowSizes() WindowSizes {
	return WindowSizes{
		Selections: 40,
		Imagery:    25,
		Hashes:     30,
		Clusters:   25,
		Provinces:  6,
	}
}

// window is a bounded FIFO of recently seen values
type window struct {
	size  int
	items []string
}

func newWindow(size int) *window {
	return &window{size: size}
}

func (w *window) contains(v string) bool {
	if w.size <= 0 {
		return false
	}
	for _, it := range w.items {
		if it == v {
			return true
		}
	}
	return false
}

func (w *window) push(v string) {
	if w.size <= 0 {
		return
	}
	w.items = append(w.items, v)
	if len(w.items) > w.size {
		w.items = w.items[1:]
	}
}

// last returns the most recently pushed value, or "" if empty
func (w *window) last() string {
	if len(w.items) == 0 {
		return ""
	}
	return w.items[len(w.items)-1]
}

func (w *window) clone() *window {
	c := &window{size: w.size}
	c.items = append(c.items, w.items...)
	return c
}

// antiRepeat tracks recent selections along five dimensions plus the hard
// last-province pointer
type antiRepeat struct {
	selections *window
	imagery    *window
	hashes     *window
	clusters   *window
	provinces  *window

	lastProvince string
}

func newAntiRepeat(sizes WindowSizes) *antiRepeat {
	return &antiRepeat{
		selections: newWindow(sizes.Selections),
		imagery:    newWindow(sizes.Imagery),
		hashes:     newWindow(sizes.Hashes),
		clusters:   newWindow(sizes.Clusters),
		provinces:  newWindow(sizes.Provinces),
	}
}

// Check evaluates the sliding windows in order and returns the first
// rejection. The province window is skipped when relaxProvince is set;
// the back-to-back guard is NOT part of Check and is never relaxed.
func (a *antiRepeat) Check(c *models.EnrichedLocation, relaxProvince bool) RejectReason {
	if a.selections.contains(c.Record.ID) {
		return RejectRecentSelection
	}
	if a.imagery.contains(c.Record.Primary.ImageryID) {
		return RejectRecentImagery
	}
	if a.hashes.contains(c.LocationHash) {
		return RejectRecentHash
	}
	if a.clusters.contains(c.ClusterID) {
		return RejectRecentCluster
	}
	if !relaxProvince && a.provinces.contains(c.Province) {
		return RejectRecentProvince
	}
	return RejectNone
}

// IsBackToBack reports whether picking the province would repeat the most
// recent selection's province. Callers must consult this on every path.
func (a *antiRepeat) IsBackToBack(province string) bool {
	return a.lastProvince != "" && province == a.lastProvince
}

// Record pushes the candidate into every window and moves lastProvince
func (a *antiRepeat) Record(c *models.EnrichedLocation) {
	a.selections.push(c.Record.ID)
	a.imagery.push(c.Record.Primary.ImageryID)
	a.hashes.push(c.LocationHash)
	a.clusters.push(c.ClusterID)
	a.provinces.push(c.Province)
	a.lastProvince = c.Province
}

func (a *antiRepeat) clone() *antiRepeat {
	return &antiRepeat{
		selections:   a.selections.clone(),
		imagery:      a.imagery.clone(),
		hashes:       a.hashes.clone(),
		clusters:     a.clusters.clone(),
		provinces:    a.provinces.clone(),
		lastProvince: a.lastProvince,
	}
}

// AntiRepeatState is the read-only diagnostic view of the engine's
// anti-repeat windows
type AntiRepeatState struct {
	Selections   []string `json:"selections"`
	Imagery      []string `json:"imagery"`
	Hashes       []string `json:"hashes"`
	Clusters     []string `json:"clusters"`
	Provinces    []string `json:"provinces"`
	LastProvince string   `json:"last_province"`
}

func (a *antiRepeat) state() AntiRepeatState {
	return AntiRepeatState{
		Selections:   append([]string(nil), a.selections.items...),
		Imagery:      append([]string(nil), a.imagery.items...),
		Hashes:       append([]string(nil), a.hashes.items...),
		Clusters:     append([]string(nil), a.clusters.items...),
		Provinces:    append([]string(nil), a.provinces.items...),
		LastProvince: a.lastProvince,
	}
}
