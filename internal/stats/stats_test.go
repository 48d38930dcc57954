package stats

import (
	"math"
	"testing"
)

func TestNormalizeToMax(t *testing.T) {
	tests := []struct {
		value, max, want float64
	}{
		{5, 10, 0.5},
		{10, 10, 1},
		{15, 10, 1}, // clamped
		{3, 0, 0},   // zero max
	}
	for _, tt := range tests {
		if got := NormalizeToMax(tt.value, tt.max); got != tt.want {
			t.Errorf("NormalizeToMax(%f, %f) = %f, want %f", tt.value, tt.max, got, tt.want)
		}
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	tests := []struct {
		q, want float64
	}{
		{0, 1},
		{0.5, 3},
		{1, 5},
		{0.25, 2},
	}
	for _, tt := range tests {
		if got := Quantile(values, tt.q); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Quantile(%f) = %f, want %f", tt.q, got, tt.want)
		}
	}

	if got := Quantile(nil, 0.5); got != 0 {
		t.Errorf("Quantile of empty = %f, want 0", got)
	}
}

func TestPercentileRank(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	if got := PercentileRank(values, 20); got != 50 {
		t.Errorf("PercentileRank(20) = %f, want 50", got)
	}
	if got := PercentileRank(values, 100); got != 100 {
		t.Errorf("PercentileRank(100) = %f, want 100", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{2, 4, 6}); got != 4 {
		t.Errorf("Mean = %f, want 4", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean of empty = %f, want 0", got)
	}
}
