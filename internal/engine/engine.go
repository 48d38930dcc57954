// Package engine implements the location-selection core: dataset
// enrichment, the anti-repeat windows, the province rotation bag, the
// difficulty-mix static selector, the seed builder, the dynamic minter,
// and the cross-session fingerprint ring.
//
// An Engine is built per game session; constructing a fresh one is the
// reset mechanism. All state is confined to the struct, so concurrent
// sessions in one process never share windows, bag, metrics, or RNG. A
// single Engine is NOT safe for concurrent use: rounds must be requested
// and recorded strictly one after another by one authoritative caller.
package engine

import (
	"math/rand"
	"time"

	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/resolver"
)

// Bounds is the global geographic acceptance box for minted coordinates
type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains reports whether the point falls inside the box
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// TurkeyBounds covers the curated coverage area
var TurkeyBounds = Bounds{MinLat: 35.8, MaxLat: 42.2, MinLng: 25.6, MaxLng: 44.9}

// ModeConfig carries the per-mode selection policy
type ModeConfig struct {
	// Target tier mix; must sum to 1
	EasyWeight   float64
	MediumWeight float64
	HardWeight   float64

	// Whether province rotation via the bag is part of the fallback
	// ladder (urban play rotates provinces, rural play roams freely)
	RequireRotation bool
}

func configFor(mode models.Mode) ModeConfig {
	switch mode {
	case models.ModeRural:
		return ModeConfig{
			EasyWeight:      0.15,
			MediumWeight:    0.55,
			HardWeight:      0.30,
			RequireRotation: false,
		}
	default:
		return ModeConfig{
			EasyWeight:      0.15,
			MediumWeight:    0.55,
			HardWeight:      0.30,
			RequireRotation: true,
		}
	}
}

// Options configures engine construction. Zero values pick production
// defaults.
type Options struct {
	// Seedable randomness source; nil uses a time-seeded one
	RNG *rand.Rand

	// Imagery resolver for dynamic minting; nil disables minting
	Resolver resolver.Resolver

	// Anti-repeat window sizes; zero value uses DefaultWindowSizes
	Windows WindowSizes

	// Fingerprints carried over from previous sessions
	Fingerprints []models.Fingerprint

	// Geographic acceptance box for minted points; zero uses TurkeyBounds
	Bounds Bounds
}

// Engine holds every piece of mutable selection state for one game
// session
type Engine struct {
	mode models.Mode
	cfg  ModeConfig
	rng  *rand.Rand

	enriched []models.EnrichedLocation
	eligible []string
	byTier   map[models.Difficulty][]int
	byProv   map[string][]int

	repeats *antiRepeat
	bag     *provinceBag
	seeds   map[string]*models.ProvinceSeed
	history *HistoryRing

	res     resolver.Resolver
	bounds  Bounds
	metrics models.MintMetrics
}

// New enriches the dataset and builds a fresh engine for one session
func New(records []models.LocationRecord, mode models.Mode, opts Options) *Engine {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	bounds := opts.Bounds
	if bounds == (Bounds{}) {
		bounds = TurkeyBounds
	}

	enriched := Enrich(records, mode)
	eligible := EligibleProvinces(enriched)

	byTier := make(map[models.Difficulty][]int)
	byProv := make(map[string][]int)
	for i := range enriched {
		byTier[enriched[i].Difficulty] = append(byTier[enriched[i].Difficulty], i)
		byProv[enriched[i].Province] = append(byProv[enriched[i].Province], i)
	}

	windows := opts.Windows
	if windows == (WindowSizes{}) {
		windows = DefaultWindowSizes()
	}
	windows = clampWindows(windows, enriched, eligible)

	return &Engine{
		mode:     mode,
		cfg:      configFor(mode),
		rng:      rng,
		enriched: enriched,
		eligible: eligible,
		byTier:   byTier,
		byProv:   byProv,
		repeats:  newAntiRepeat(windows),
		bag:      newProvinceBag(rng, eligible),
		seeds:    BuildSeeds(enriched),
		history:  NewHistoryRing(opts.Fingerprints),
		res:      opts.Resolver,
		bounds:   bounds,
		metrics:  models.MintMetrics{Rejections: make(map[models.MintRejectCause]int)},
	}
}

// clampWindows caps each window strictly below the dataset's unique-value
// cardinality for its dimension. A window as large as the cardinality
// eventually rejects every candidate and deadlocks selection.
func clampWindows(w WindowSizes, enriched []models.EnrichedLocation, eligible []string) WindowSizes {
	ids := make(map[string]bool)
	imagery := make(map[string]bool)
	hashes := make(map[string]bool)
	clusters := make(map[string]bool)
	for i := range enriched {
		ids[enriched[i].Record.ID] = true
		imagery[enriched[i].Record.Primary.ImageryID] = true
		hashes[enriched[i].LocationHash] = true
		clusters[enriched[i].ClusterID] = true
	}

	clamp := func(size, cardinality int) int {
		if size >= cardinality {
			size = cardinality - 1
		}
		if size < 0 {
			size = 0
		}
		return size
	}
	w.Selections = clamp(w.Selections, len(ids))
	w.Imagery = clamp(w.Imagery, len(imagery))
	w.Hashes = clamp(w.Hashes, len(hashes))
	w.Clusters = clamp(w.Clusters, len(clusters))
	w.Provinces = clamp(w.Provinces, len(eligible))
	return w
}

// Mode returns the engine's gameplay mode
func (e *Engine) Mode() models.Mode {
	return e.mode
}

// EnrichedLocations returns the enriched dataset (read-only diagnostics)
func (e *Engine) EnrichedLocations() []models.EnrichedLocation {
	return e.enriched
}

// EligibleProvinceList returns the provinces holding at least one
// non-banned candidate
func (e *Engine) EligibleProvinceList() []string {
	return e.eligible
}

// AntiRepeatState returns a snapshot of the anti-repeat windows
func (e *Engine) AntiRepeatState() AntiRepeatState {
	return e.repeats.state()
}

// LastProvince returns the province of the most recent recorded
// selection, or "" if none yet
func (e *Engine) LastProvince() string {
	return e.repeats.lastProvince
}

// Seeds returns the per-province sampling zones
func (e *Engine) Seeds() map[string]*models.ProvinceSeed {
	return e.seeds
}

// History returns the persistent fingerprint ring
func (e *Engine) History() *HistoryRing {
	return e.history
}

// MintMetrics returns a copy of the minting counters
func (e *Engine) MintMetrics() models.MintMetrics {
	m := e.metrics
	m.Rejections = make(map[models.MintRejectCause]int, len(e.metrics.Rejections))
	for k, v := range e.metrics.Rejections {
		m.Rejections[k] = v
	}
	return m
}
