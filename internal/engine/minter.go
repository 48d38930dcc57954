package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/spatial"
	"github.com/jengzang/geopick-backend-go/internal/stats"
)

const (
	// Hard cap on resolver usage per mint. A cost-control invariant,
	// not a tuning knob.
	maxMintAttempts = 2

	// Acceptance slack around the seed disk for the resolved point; the
	// resolver may snap to imagery slightly outside the sampled disk
	envelopeToleranceKm = 0.5

	// Curated-package count at which a province reads as fully
	// recognizable in difficulty estimation
	densitySaturation = 20

	mintedQuality = 3
)

// mintReject is returned by a single attempt's validation
type mintReject struct {
	cause models.MintRejectCause
}

// Mint assembles a brand-new location for the province by sampling its
// seed zones and resolving imagery externally. lastProvince is the
// authoritative most-recent province; matching it fails immediately with
// zero resolver calls.
func (e *Engine) Mint(ctx context.Context, province, lastProvince string) models.MintResult {
	if province != "" && province == lastProvince {
		e.metrics.TotalFail++
		return models.MintResult{FailReason: models.MintFailBackToBack}
	}

	seed, ok := e.seeds[province]
	if !ok || len(seed.Entries) == 0 || e.res == nil {
		e.metrics.TotalFail++
		return models.MintResult{FailReason: models.MintFailAllExhausted}
	}

	for attempt := 1; attempt <= maxMintAttempts; attempt++ {
		e.metrics.TotalAttempts++

		rec, rej := e.mintAttempt(ctx, province, seed)
		if rej != nil {
			e.metrics.Rejections[rej.cause]++
			continue
		}

		e.metrics.TotalSuccess++
		return models.MintResult{Package: rec, AttemptsUsed: attempt}
	}

	e.metrics.TotalFail++
	return models.MintResult{AttemptsUsed: maxMintAttempts, FailReason: models.MintFailAllExhausted}
}

func (e *Engine) mintAttempt(ctx context.Context, province string, seed *models.ProvinceSeed) (*models.LocationRecord, *mintReject) {
	entry := seed.Entries[e.rng.Intn(len(seed.Entries))]
	lat, lng := SampleSeed(e.rng, entry)

	if !e.bounds.Contains(lat, lng) {
		return nil, &mintReject{cause: models.MintRejectOutOfBounds}
	}

	e.metrics.TotalResolverCalls++
	res, err := e.res.Resolve(ctx, lat, lng, int(entry.RadiusKm*1000))
	if err != nil || res == nil {
		return nil, &mintReject{cause: models.MintRejectResolverFailed}
	}

	// The resolver snaps to the nearest panorama; keep only points that
	// stay in character for the seed zone
	centerDist := spatial.HaversineKm(entry.CenterLat, entry.CenterLng, res.Lat, res.Lng)
	if centerDist > entry.RadiusKm+envelopeToleranceKm {
		return nil, &mintReject{cause: models.MintRejectOutsideEnvelope}
	}

	hash := spatial.GridHash(res.Lat, res.Lng)
	cluster := spatial.ClusterID(province, hash)

	if e.history.Check(res.ImageryID, hash) != HistoryNone {
		return nil, &mintReject{cause: models.MintRejectHistoryConflict}
	}
	if e.repeats.imagery.contains(res.ImageryID) || e.repeats.hashes.contains(hash) || e.repeats.clusters.contains(cluster) {
		return nil, &mintReject{cause: models.MintRejectHistoryConflict}
	}

	rec := e.assembleMinted(province, entry, res.ImageryID, res.Lat, res.Lng, centerDist/entry.RadiusKm, seed.TotalStaticPackages)

	e.history.Record(models.Fingerprint{
		ImageryID:    res.ImageryID,
		LocationHash: hash,
		Province:     province,
		ClusterID:    cluster,
		CreatedAt:    time.Now(),
	})

	return rec, nil
}

// assembleMinted builds the location record: a primary view plus three
// synthetic directional branches sharing the resolved imagery id
func (e *Engine) assembleMinted(province string, entry models.SeedEntry, imageryID string, lat, lng, distNorm float64, totalPackages int) *models.LocationRecord {
	placeName := province
	if entry.District != "" {
		placeName = entry.District + ", " + province
	}

	baseHeading := e.rng.Float64() * 360
	rec := &models.LocationRecord{
		ID:        uuid.NewString(),
		Mode:      e.mode,
		Quality:   mintedQuality,
		PlaceName: placeName,
		Dynamic:   true,
		Primary: models.ImageryRef{
			ImageryID: imageryID,
			Lat:       lat,
			Lng:       lng,
			Heading:   baseHeading,
		},
	}
	for i := 0; i < 3; i++ {
		rec.Branches[i] = models.ImageryRef{
			ImageryID: imageryID,
			Lat:       lat,
			Lng:       lng,
			Heading:   normalizeHeading(baseHeading + float64(i+1)*90),
		}
	}
	rec.EstimatedDifficulty = estimateMintDifficulty(distNorm, totalPackages)
	return rec
}

// estimateMintDifficulty blends how central the point sits in its seed
// with how much curated coverage the province has. Central points in
// well-covered provinces skew easy.
func estimateMintDifficulty(distNorm float64, totalPackages int) models.Difficulty {
	if distNorm > 1 {
		distNorm = 1
	}
	density := stats.NormalizeToMax(float64(totalPackages), densitySaturation)
	score := 0.6*(1-distNorm) + 0.4*density
	switch {
	case score >= 0.65:
		return models.DifficultyEasy
	case score >= 0.35:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// RecordDynamicSelection pushes a minted pick into the anti-repeat state
// so following rounds honor it like any static selection. Call it once
// per dynamic pick used outside the static path.
func (e *Engine) RecordDynamicSelection(rec *models.LocationRecord) {
	province := ExtractProvince(rec.PlaceName)
	hash := spatial.GridHash(rec.Primary.Lat, rec.Primary.Lng)
	e.repeats.Record(&models.EnrichedLocation{
		Record:       *rec,
		Province:     province,
		LocationHash: hash,
		ClusterID:    spatial.ClusterID(province, hash),
	})
}

func normalizeHeading(h float64) float64 {
	for h >= 360 {
		h -= 360
	}
	for h < 0 {
		h += 360
	}
	return h
}
