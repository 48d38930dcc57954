package engine

import (
	"math"
	"testing"

	"github.com/jengzang/geopick-backend-go/internal/models"
)

func TestSelectStaticInvariants10k(t *testing.T) {
	const draws = 10000

	records := testDataset(testProvinces, 30)
	// A few source-banned records sprinkled in
	for i := 0; i < len(records); i += 47 {
		records[i].Banned = true
	}
	e := testEngine(records, 42)

	tierCounts := map[models.Difficulty]int{}
	var prev *models.EnrichedLocation

	for i := 0; i < draws; i++ {
		c := e.SelectStatic("")
		if c == nil {
			t.Fatalf("draw %d: selection exhausted with a rich pool", i)
		}
		if c.Banned {
			t.Fatalf("draw %d: banned record %q selected", i, c.Record.ID)
		}
		if prev != nil {
			if c.Province == prev.Province {
				t.Fatalf("draw %d: back-to-back province %q", i, c.Province)
			}
			if c.Record.Primary.ImageryID == prev.Record.Primary.ImageryID {
				t.Fatalf("draw %d: consecutive imagery id %q", i, c.Record.Primary.ImageryID)
			}
			if c.LocationHash == prev.LocationHash {
				t.Fatalf("draw %d: consecutive location hash %q", i, c.LocationHash)
			}
			if c.ClusterID == prev.ClusterID {
				t.Fatalf("draw %d: consecutive cluster %q", i, c.ClusterID)
			}
		}
		tierCounts[c.Difficulty]++
		prev = c
	}

	// Difficulty mix must land within ±5 percentage points of 15/55/30
	targets := map[models.Difficulty]float64{
		models.DifficultyEasy:   0.15,
		models.DifficultyMedium: 0.55,
		models.DifficultyHard:   0.30,
	}
	for tier, target := range targets {
		got := float64(tierCounts[tier]) / float64(draws)
		if math.Abs(got-target) > 0.05 {
			t.Errorf("%s share = %.3f, want %.2f ±0.05", tier, got, target)
		}
	}
}

func TestSelectStaticRecordsExactlyOnce(t *testing.T) {
	e := testEngine(testDataset(testProvinces[:4], 5), 1)

	c := e.SelectStatic("")
	if c == nil {
		t.Fatal("selection returned nil")
	}

	state := e.AntiRepeatState()
	if len(state.Selections) != 1 {
		t.Errorf("selection window holds %d entries after one draw, want 1", len(state.Selections))
	}
	if state.LastProvince != c.Province {
		t.Errorf("lastProvince = %q, want %q", state.LastProvince, c.Province)
	}
}

func TestSelectStaticPreferredProvince(t *testing.T) {
	e := testEngine(testDataset(testProvinces, 10), 5)

	c := e.SelectStatic("Ankara")
	if c == nil {
		t.Fatal("selection returned nil")
	}
	if c.Province != "Ankara" {
		t.Errorf("preferred province ignored: got %q", c.Province)
	}

	// Preferring the province just played must not yield back-to-back
	c2 := e.SelectStatic("Ankara")
	if c2 == nil {
		t.Fatal("second selection returned nil")
	}
	if c2.Province == "Ankara" {
		t.Error("preferred province produced a back-to-back repeat")
	}
}

func TestSelectStaticSkipsBanned(t *testing.T) {
	// Two provinces with one record each: the banned one can never win
	records := []models.LocationRecord{
		testRecord("a", "Fatih, İstanbul", 41.0086, 28.9802, 3, true),
		testRecord("b", "Çankaya, Ankara", 39.9208, 32.8541, 3, false),
	}
	e := testEngine(records, 2)

	c := e.SelectStatic("")
	if c == nil {
		t.Fatal("selection returned nil")
	}
	if c.Record.ID != "b" {
		t.Errorf("selected %q, want the only non-banned record", c.Record.ID)
	}
}

func TestSelectStaticExhaustion(t *testing.T) {
	// Single province: after the first pick, every candidate is
	// back-to-back and even the last ladder rung must refuse it
	records := testDataset(testProvinces[:1], 3)
	e := testEngine(records, 9)

	if c := e.SelectStatic(""); c == nil {
		t.Fatal("first selection should succeed")
	}
	if c := e.SelectStatic(""); c != nil {
		t.Errorf("second selection = %q, want nil (only back-to-back candidates left)", c.Record.ID)
	}
}

func TestSimulateRestoresState(t *testing.T) {
	e := testEngine(testDataset(testProvinces, 10), 3)

	first := e.SelectStatic("")
	if first == nil {
		t.Fatal("selection returned nil")
	}
	before := e.AntiRepeatState()

	report := e.Simulate(500)
	if report.Draws != 500 {
		t.Errorf("report draws = %d, want 500", report.Draws)
	}
	if report.BackToBackProvinces != 0 {
		t.Errorf("simulation saw %d back-to-back provinces, want 0", report.BackToBackProvinces)
	}
	if report.BannedPicks != 0 {
		t.Errorf("simulation saw %d banned picks, want 0", report.BannedPicks)
	}
	if report.Exhausted != 0 {
		t.Errorf("simulation exhausted %d times with a rich pool", report.Exhausted)
	}

	after := e.AntiRepeatState()
	if len(after.Selections) != len(before.Selections) || after.LastProvince != before.LastProvince {
		t.Error("Simulate mutated live selection state")
	}
}

func TestSimulateProvinceSpread(t *testing.T) {
	e := testEngine(testDataset(testProvinces, 10), 4)

	report := e.Simulate(600)
	spread := report.ProvinceSpread

	if spread.Max == 0 || spread.Mean <= 0 {
		t.Fatalf("spread not populated: %+v", spread)
	}

	// Mean of the per-province counts times the province tally recovers
	// the number of successful draws
	selected := float64(report.Draws - report.Exhausted)
	if got := spread.Mean * float64(len(report.ProvinceCounts)); math.Abs(got-selected) > 1e-6 {
		t.Errorf("mean * provinces = %.2f, want %.0f", got, selected)
	}
	if spread.Median > spread.P90 {
		t.Errorf("median %.2f exceeds p90 %.2f", spread.Median, spread.P90)
	}
	if float64(spread.Max) < spread.P90 {
		t.Errorf("max %d below p90 %.2f", spread.Max, spread.P90)
	}
	if spread.MeanRank <= 0 || spread.MeanRank > 100 {
		t.Errorf("mean rank = %.2f, want (0,100]", spread.MeanRank)
	}
}
