package spatial

import (
	"math"
	"testing"
)

func TestGridHashSameCell(t *testing.T) {
	a := GridHash(41.0086, 28.9802)
	b := GridHash(41.0086, 28.9802)
	if a != b {
		t.Errorf("identical points hash differently: %q vs %q", a, b)
	}
}

func TestGridHashDifferentCells(t *testing.T) {
	a := GridHash(41.0, 29.0)
	b := GridHash(39.0, 32.0)
	if a == b {
		t.Errorf("distant points share hash %q", a)
	}
}

func TestGridHashRounding(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     string
	}{
		{41.0086, 28.9802, "41.009_28.980"},
		{41.00849, 28.98001, "41.008_28.980"},
		{-33.8688, 151.2093, "-33.869_151.209"},
		{0, 0, "0.000_0.000"},
	}
	for _, tt := range tests {
		if got := GridHash(tt.lat, tt.lng); got != tt.want {
			t.Errorf("GridHash(%f, %f) = %q, want %q", tt.lat, tt.lng, got, tt.want)
		}
	}
}

func TestClusterID(t *testing.T) {
	if got := ClusterID("İstanbul", "41.009_28.980"); got != "İstanbul__41.009_28.980" {
		t.Errorf("ClusterID = %q", got)
	}
}

func TestHaversineKm(t *testing.T) {
	// İstanbul to Ankara is roughly 350 km
	d := HaversineKm(41.0082, 28.9784, 39.9334, 32.8597)
	if d < 330 || d > 370 {
		t.Errorf("İstanbul-Ankara distance = %.1f km, want ~350", d)
	}

	if d := HaversineKm(41.0, 29.0, 41.0, 29.0); d != 0 {
		t.Errorf("zero distance = %f", d)
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	lat, lng := DestinationPoint(39.9334, 32.8597, 45, 2.0)
	back := HaversineKm(39.9334, 32.8597, lat, lng)
	if math.Abs(back-2.0) > 0.01 {
		t.Errorf("destination point is %.4f km away, want 2.0", back)
	}
}

func TestCentroid(t *testing.T) {
	lat, lng := Centroid([]float64{40, 42}, []float64{28, 30})
	if lat != 41 || lng != 29 {
		t.Errorf("centroid = (%f, %f), want (41, 29)", lat, lng)
	}

	if lat, lng := Centroid(nil, nil); lat != 0 || lng != 0 {
		t.Errorf("empty centroid = (%f, %f), want origin", lat, lng)
	}
}
