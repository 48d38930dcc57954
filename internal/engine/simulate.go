package engine

import (
	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/stats"
)

// ProvinceSpread summarizes how the draws distributed over provinces
type ProvinceSpread struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	Max    int     `json:"max"`

	// Percentile rank of the mean within the per-province counts; values
	// near 50 indicate balanced rotation, higher values a skewed one
	MeanRank float64 `json:"mean_rank"`
}

// SimulationReport aggregates n selection draws run against a snapshot of
// the engine state. Intended for invariant validation, not production.
type SimulationReport struct {
	Draws     int `json:"draws"`
	Exhausted int `json:"exhausted"`

	TierCounts     map[models.Difficulty]int `json:"tier_counts"`
	ProvinceCounts map[string]int            `json:"province_counts"`
	StageCounts    map[SelectStage]int       `json:"stage_counts"`
	ProvinceSpread ProvinceSpread            `json:"province_spread"`

	// Hard-invariant violations; any nonzero value is a bug
	BackToBackProvinces int `json:"back_to_back_provinces"`
	BannedPicks         int `json:"banned_picks"`
}

// Simulate performs n static draws and restores the selection state
// afterwards, so a running session can be probed without disturbing it.
// The RNG advances; runs are reproducible only from a freshly seeded
// engine.
func (e *Engine) Simulate(n int) SimulationReport {
	savedRepeats := e.repeats
	savedBag := e.bag
	e.repeats = e.repeats.clone()
	e.bag = e.bag.clone()
	defer func() {
		e.repeats = savedRepeats
		e.bag = savedBag
	}()

	report := SimulationReport{
		Draws:          n,
		TierCounts:     make(map[models.Difficulty]int),
		ProvinceCounts: make(map[string]int),
		StageCounts:    make(map[SelectStage]int),
	}

	prevProvince := e.repeats.lastProvince
	for i := 0; i < n; i++ {
		c, stage := e.selectStatic("")
		report.StageCounts[stage]++
		if c == nil {
			report.Exhausted++
			continue
		}

		report.TierCounts[c.Difficulty]++
		report.ProvinceCounts[c.Province]++
		if c.Banned {
			report.BannedPicks++
		}
		if prevProvince != "" && c.Province == prevProvince {
			report.BackToBackProvinces++
		}
		prevProvince = c.Province
	}

	if len(report.ProvinceCounts) > 0 {
		counts := make([]float64, 0, len(report.ProvinceCounts))
		ints := make([]int, 0, len(report.ProvinceCounts))
		for _, n := range report.ProvinceCounts {
			counts = append(counts, float64(n))
			ints = append(ints, n)
		}
		mean := stats.Mean(counts)
		report.ProvinceSpread = ProvinceSpread{
			Mean:     mean,
			Median:   stats.Quantile(counts, 0.5),
			P90:      stats.Quantile(counts, 0.9),
			Max:      stats.MaxInt(ints),
			MeanRank: stats.PercentileRank(counts, mean),
		}
	}

	return report
}
