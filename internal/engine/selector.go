package engine

import "github.com/jengzang/geopick-backend-go/internal/models"

// minRotationPops floors how many bag pops the rotation stage tries, so
// small eligible lists still get a meaningful rotation pass
const minRotationPops = 48

// SelectStage identifies which rung of the fallback ladder produced a
// selection. Exposed for simulation statistics.
type SelectStage int

const (
	StageNone         SelectStage = iota // exhausted, no candidate at all
	StageTierStrict                      // target tier, full anti-repeat
	StageTierRelaxed                     // target tier, province window relaxed
	StageRotation                        // province rotation via the bag
	StageAnyRelaxed                      // any tier, any province, province window relaxed
	StageRecentOnly                      // guards against the single most recent pick only
	StageRecentImagery                   // most recent imagery id + back-to-back guard
	StageBackToBack                      // back-to-back province guard only
)

// SelectStatic returns one enriched location honoring the selection
// invariants, or nil when even the most relaxed constraints cannot be
// met. Exactly one anti-repeat recording happens per successful return.
//
// preferred, when non-empty, is tried as the target province before the
// normal ladder runs.
func (e *Engine) SelectStatic(preferred string) *models.EnrichedLocation {
	c, _ := e.selectStatic(preferred)
	return c
}

func (e *Engine) selectStatic(preferred string) (*models.EnrichedLocation, SelectStage) {
	target := e.pickTier()

	// Preferred province short-circuits the ladder when it can serve
	if preferred != "" && !e.repeats.IsBackToBack(preferred) {
		if c := e.provinceScan(preferred, target); c != nil {
			e.repeats.Record(c)
			return c, StageRotation
		}
	}

	// Stage 1: difficulty-first across all provinces
	if c := e.scan(e.byTier[target], false); c != nil {
		e.repeats.Record(c)
		return c, StageTierStrict
	}
	if c := e.scan(e.byTier[target], true); c != nil {
		e.repeats.Record(c)
		return c, StageTierRelaxed
	}

	// Stage 2: province rotation through the bag
	if e.cfg.RequireRotation {
		pops := len(e.eligible)
		if pops < minRotationPops {
			pops = minRotationPops
		}
		for i := 0; i < pops; i++ {
			p := e.bag.pop(e.repeats.lastProvince)
			if p == "" || p == e.repeats.lastProvince {
				continue
			}
			if c := e.provinceScan(p, target); c != nil {
				e.repeats.Record(c)
				return c, StageRotation
			}
		}
	}

	// Stage 3: any tier, any province, relaxed province window
	if c := e.scan(e.allIndices(), true); c != nil {
		e.repeats.Record(c)
		return c, StageAnyRelaxed
	}

	// Stage 4: progressively drop window constraints, guarding only
	// against the single most recent selection. The back-to-back
	// province guard survives every rung.
	lastImagery := e.repeats.imagery.last()
	lastHash := e.repeats.hashes.last()
	lastCluster := e.repeats.clusters.last()

	if c := e.scanFunc(func(cand *models.EnrichedLocation) bool {
		return cand.Record.Primary.ImageryID != lastImagery &&
			cand.LocationHash != lastHash &&
			cand.ClusterID != lastCluster
	}); c != nil {
		e.repeats.Record(c)
		return c, StageRecentOnly
	}
	if c := e.scanFunc(func(cand *models.EnrichedLocation) bool {
		return cand.Record.Primary.ImageryID != lastImagery
	}); c != nil {
		e.repeats.Record(c)
		return c, StageRecentImagery
	}
	if c := e.scanFunc(func(*models.EnrichedLocation) bool { return true }); c != nil {
		e.repeats.Record(c)
		return c, StageBackToBack
	}

	return nil, StageNone
}

// provinceScan tries one province: the target tier, then the fixed
// fallback order, with strict windows; finally any tier in the province
// with the province window relaxed.
func (e *Engine) provinceScan(province string, target models.Difficulty) *models.EnrichedLocation {
	indices := e.byProv[province]
	for _, tier := range tierFallbackOrder(target) {
		var tiered []int
		for _, i := range indices {
			if e.enriched[i].Difficulty == tier {
				tiered = append(tiered, i)
			}
		}
		if c := e.scan(tiered, false); c != nil {
			return c
		}
	}
	return e.scan(indices, true)
}

// scan shuffles the index set and returns the first non-banned candidate
// that is not a back-to-back province and passes the window checks
func (e *Engine) scan(indices []int, relaxProvince bool) *models.EnrichedLocation {
	for _, i := range e.shuffled(indices) {
		c := &e.enriched[i]
		if c.Banned || e.repeats.IsBackToBack(c.Province) {
			continue
		}
		if e.repeats.Check(c, relaxProvince) != RejectNone {
			continue
		}
		return c
	}
	return nil
}

// scanFunc shuffles the whole dataset and returns the first non-banned,
// non-back-to-back candidate accepted by ok
func (e *Engine) scanFunc(ok func(*models.EnrichedLocation) bool) *models.EnrichedLocation {
	for _, i := range e.shuffled(e.allIndices()) {
		c := &e.enriched[i]
		if c.Banned || e.repeats.IsBackToBack(c.Province) {
			continue
		}
		if ok(c) {
			return c
		}
	}
	return nil
}

func (e *Engine) allIndices() []int {
	indices := make([]int, len(e.enriched))
	for i := range indices {
		indices[i] = i
	}
	return indices
}

func (e *Engine) shuffled(indices []int) []int {
	out := append([]int(nil), indices...)
	e.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
