package engine

import (
	"math"
	"math/rand"

	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/spatial"
)

const (
	// Seed geometry tuning, all in kilometers
	defaultSeedRadiusKm = 1.2
	seedPaddingKm       = 0.75
	minSeedRadiusKm     = 0.5
	maxSeedRadiusKm     = 4.0
	districtSplitKm     = 5.0

	// Sampling never lands exactly on the seed center
	minSampleOffsetKm = 0.05
)

type seedPoint struct {
	lat, lng float64
	district string
}

// BuildSeeds derives per-province sampling zones from the enriched
// dataset. A province whose records sprawl more than districtSplitKm gets
// one seed per district; compact provinces get a single centroid seed.
func BuildSeeds(enriched []models.EnrichedLocation) map[string]*models.ProvinceSeed {
	byProvince := make(map[string][]seedPoint)
	for i := range enriched {
		e := &enriched[i]
		byProvince[e.Province] = append(byProvince[e.Province], seedPoint{
			lat:      e.Record.Primary.Lat,
			lng:      e.Record.Primary.Lng,
			district: ExtractDistrict(e.Record.PlaceName),
		})
	}

	seeds := make(map[string]*models.ProvinceSeed, len(byProvince))
	for province, pts := range byProvince {
		seed := &models.ProvinceSeed{
			Province:            province,
			TotalStaticPackages: len(pts),
		}

		if len(pts) == 1 {
			seed.Entries = []models.SeedEntry{{
				CenterLat: pts[0].lat,
				CenterLng: pts[0].lng,
				RadiusKm:  defaultSeedRadiusKm,
				District:  pts[0].district,
			}}
			seeds[province] = seed
			continue
		}

		maxSpread := 0.0
		for i := 0; i < len(pts); i++ {
			for j := i + 1; j < len(pts); j++ {
				d := spatial.HaversineKm(pts[i].lat, pts[i].lng, pts[j].lat, pts[j].lng)
				if d > maxSpread {
					maxSpread = d
				}
			}
		}

		if maxSpread > districtSplitKm {
			// Sprawling province: one seed per district group
			groups := make(map[string][]seedPoint)
			for _, p := range pts {
				groups[p.district] = append(groups[p.district], p)
			}
			for district, group := range groups {
				seed.Entries = append(seed.Entries, centroidEntry(group, district))
			}
		} else {
			seed.Entries = []models.SeedEntry{centroidEntry(pts, "")}
		}

		seeds[province] = seed
	}
	return seeds
}

// centroidEntry builds a seed disk enclosing the group: centroid center,
// radius = farthest member + padding, clamped to the configured range
func centroidEntry(group []seedPoint, district string) models.SeedEntry {
	lats := make([]float64, len(group))
	lngs := make([]float64, len(group))
	for i, p := range group {
		lats[i], lngs[i] = p.lat, p.lng
	}
	cLat, cLng := spatial.Centroid(lats, lngs)

	radius := 0.0
	for i := range lats {
		if d := spatial.HaversineKm(cLat, cLng, lats[i], lngs[i]); d > radius {
			radius = d
		}
	}
	radius += seedPaddingKm
	if radius < minSeedRadiusKm {
		radius = minSeedRadiusKm
	}
	if radius > maxSeedRadiusKm {
		radius = maxSeedRadiusKm
	}

	return models.SeedEntry{
		CenterLat: cLat,
		CenterLng: cLng,
		RadiusKm:  radius,
		District:  district,
	}
}

// SampleSeed draws a uniform-area point inside the seed disk. The sqrt
// transform keeps density uniform over the disk rather than clustering at
// the center; a small minimum offset avoids resampling the exact center.
func SampleSeed(rng *rand.Rand, entry models.SeedEntry) (float64, float64) {
	r := entry.RadiusKm * math.Sqrt(rng.Float64())
	if r < minSampleOffsetKm {
		r = minSampleOffsetKm
	}
	bearing := rng.Float64() * 360
	return spatial.DestinationPoint(entry.CenterLat, entry.CenterLng, bearing, r)
}
