package engine

import (
	"fmt"
	"testing"

	"github.com/jengzang/geopick-backend-go/internal/models"
)

func candidate(id, province string) *models.EnrichedLocation {
	return &models.EnrichedLocation{
		Record: models.LocationRecord{
			ID:      id,
			Primary: models.ImageryRef{ImageryID: "img-" + id},
		},
		Province:     province,
		LocationHash: "hash-" + id,
		ClusterID:    province + "__hash-" + id,
	}
}

func TestAntiRepeatCheckOrder(t *testing.T) {
	a := newAntiRepeat(WindowSizes{Selections: 5, Imagery: 5, Hashes: 5, Clusters: 5, Provinces: 5})
	a.Record(candidate("x", "Ankara"))

	tests := []struct {
		name string
		cand *models.EnrichedLocation
		want RejectReason
	}{
		{"same id", candidate("x", "Ankara"), RejectRecentSelection},
		{"fresh", candidate("y", "İzmir"), RejectNone},
		{"same province within window", candidate("z", "Ankara"), RejectRecentProvince},
	}
	for _, tt := range tests {
		if got := a.Check(tt.cand, false); got != tt.want {
			t.Errorf("%s: Check = %q, want %q", tt.name, got, tt.want)
		}
	}

	// Relaxing the province window bypasses only the window, nothing else
	if got := a.Check(candidate("z", "Ankara"), true); got != RejectNone {
		t.Errorf("relaxed Check = %q, want none", got)
	}
	if !a.IsBackToBack("Ankara") {
		t.Error("IsBackToBack must stay true regardless of relaxation")
	}
}

func TestAntiRepeatWindowEviction(t *testing.T) {
	const size = 3
	a := newAntiRepeat(WindowSizes{Selections: size, Imagery: 10, Hashes: 10, Clusters: 10, Provinces: 10})

	for i := 0; i < size; i++ {
		a.Record(candidate(fmt.Sprintf("c%d", i), fmt.Sprintf("P%d", i)))
	}
	if got := a.Check(candidate("c0", "Q"), false); got != RejectRecentSelection {
		t.Fatalf("c0 should still be in the window, got %q", got)
	}

	// One more recording evicts the oldest entry
	a.Record(candidate("c3", "P3"))
	got := a.Check(candidate("c0", "Q"), false)
	if got == RejectRecentSelection {
		t.Error("c0 should have been evicted from the selection window")
	}
}

func TestAntiRepeatLastProvince(t *testing.T) {
	a := newAntiRepeat(DefaultWindowSizes())

	if a.IsBackToBack("Ankara") {
		t.Error("empty state should never report back-to-back")
	}

	a.Record(candidate("a", "Ankara"))
	a.Record(candidate("b", "İzmir"))

	if a.lastProvince != "İzmir" {
		t.Errorf("lastProvince = %q, want İzmir", a.lastProvince)
	}
	if a.IsBackToBack("Ankara") {
		t.Error("Ankara is no longer the most recent province")
	}
	if !a.IsBackToBack("İzmir") {
		t.Error("İzmir is the most recent province")
	}
}

func TestAntiRepeatClone(t *testing.T) {
	a := newAntiRepeat(DefaultWindowSizes())
	a.Record(candidate("a", "Ankara"))

	c := a.clone()
	c.Record(candidate("b", "İzmir"))

	if a.lastProvince != "Ankara" {
		t.Errorf("clone mutation leaked: lastProvince = %q", a.lastProvince)
	}
	if a.selections.contains("b") {
		t.Error("clone mutation leaked into original selection window")
	}
}
