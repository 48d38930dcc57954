package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/regions"
	"github.com/jengzang/geopick-backend-go/internal/spatial"
	"github.com/jengzang/geopick-backend-go/internal/stats"
)

// Tier share of the sorted score ranking: top 15% easy, next 55% medium,
// remaining 30% hard. Assignment is by index range, never by score
// threshold, so heavy ties cannot collapse a tier.
const (
	easyShare   = 0.15
	mediumShare = 0.55
)

// ExtractProvince derives the province from a free-text place name.
// "Fatih, İstanbul" splits on the last comma; names without one are
// matched against the province directory, falling back to the trimmed
// name itself.
func ExtractProvince(placeName string) string {
	if i := strings.LastIndex(placeName, ","); i >= 0 {
		return strings.TrimSpace(placeName[i+1:])
	}
	if p, ok := regions.MatchSubstring(placeName); ok {
		return p.Name
	}
	return strings.TrimSpace(placeName)
}

// ExtractDistrict returns the district fragment of a place name, or ""
// when the name carries only a province
func ExtractDistrict(placeName string) string {
	if i := strings.LastIndex(placeName, ","); i >= 0 {
		return strings.TrimSpace(placeName[:i])
	}
	return ""
}

// Enrich derives the selection metadata for a curated record list. Pure
// and deterministic: identical input yields identical output, with all
// randomness deferred to the selection steps.
func Enrich(records []models.LocationRecord, mode models.Mode) []models.EnrichedLocation {
	enriched := make([]models.EnrichedLocation, 0, len(records))

	clusterSizes := make(map[string]int)
	imageryGroups := make(map[string]int)
	provinceCounts := make(map[string]int)

	for _, rec := range records {
		if rec.Mode != mode {
			continue
		}
		province := ExtractProvince(rec.PlaceName)
		hash := spatial.GridHash(rec.Primary.Lat, rec.Primary.Lng)
		cluster := spatial.ClusterID(province, hash)

		clusterSizes[cluster]++
		imageryGroups[rec.Primary.ImageryID]++
		provinceCounts[province]++

		enriched = append(enriched, models.EnrichedLocation{
			Record:       rec,
			Province:     province,
			LocationHash: hash,
			ClusterID:    cluster,
			// Source ban flag only. Imagery hotspots are deliberately
			// left eligible and suppressed via the imagery window
			// instead; banning them starves the pool.
			Banned: rec.Banned,
		})
	}

	if len(enriched) == 0 {
		return enriched
	}

	// Observed maxima for normalization
	var maxCluster, maxImagery, maxQuality int
	maxProvince := 0.0
	provinceDensity := make(map[string]float64, len(provinceCounts))
	for p, n := range provinceCounts {
		d := float64(n) * float64(regions.Density(p))
		provinceDensity[p] = d
		if d > maxProvince {
			maxProvince = d
		}
	}
	for _, n := range clusterSizes {
		if n > maxCluster {
			maxCluster = n
		}
	}
	for _, n := range imageryGroups {
		if n > maxImagery {
			maxImagery = n
		}
	}
	for i := range enriched {
		if q := enriched[i].Record.Quality; q > maxQuality {
			maxQuality = q
		}
	}

	for i := range enriched {
		e := &enriched[i]
		e.ClusterSize = clusterSizes[e.ClusterID]
		e.ImageryGroupSize = imageryGroups[e.Record.Primary.ImageryID]

		clusterNorm := stats.NormalizeToMax(float64(e.ClusterSize), float64(maxCluster))
		densityNorm := stats.NormalizeToMax(provinceDensity[e.Province], maxProvince)
		qualityNorm := stats.NormalizeToMax(float64(e.Record.Quality), float64(maxQuality))
		imageryNorm := stats.NormalizeToMax(float64(e.ImageryGroupSize), float64(maxImagery))

		e.EasyScore = 25*clusterNorm + 25*densityNorm + 25*qualityNorm + 25*imageryNorm
	}

	assignTiers(enriched)
	return enriched
}

// assignTiers ranks by descending easy score and applies the 15/55/30
// index split. Any input of three or more records populates all tiers.
func assignTiers(enriched []models.EnrichedLocation) {
	n := len(enriched)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return enriched[order[a]].EasyScore > enriched[order[b]].EasyScore
	})

	easyN := int(math.Round(easyShare * float64(n)))
	mediumN := int(math.Round(mediumShare * float64(n)))
	if n >= 3 {
		if easyN == 0 {
			easyN = 1
		}
		if mediumN == 0 {
			mediumN = 1
		}
		if easyN+mediumN >= n {
			mediumN = n - easyN - 1
		}
	}

	for rank, idx := range order {
		switch {
		case rank < easyN:
			enriched[idx].Difficulty = models.DifficultyEasy
		case rank < easyN+mediumN:
			enriched[idx].Difficulty = models.DifficultyMedium
		default:
			enriched[idx].Difficulty = models.DifficultyHard
		}
	}
}

// EligibleProvinces lists, in sorted order, every province holding at
// least one non-banned enriched record
func EligibleProvinces(enriched []models.EnrichedLocation) []string {
	seen := make(map[string]bool)
	for i := range enriched {
		if !enriched[i].Banned {
			seen[enriched[i].Province] = true
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
