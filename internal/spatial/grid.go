package spatial

import (
	"fmt"
)

// GridPrecision is the number of decimal degrees kept in a grid hash.
// Three decimals is roughly a 111 m cell at the equator, close enough to
// catch near-duplicate panorama points without merging whole neighborhoods.
const GridPrecision = 3

// GridHash encodes latitude and longitude into a coarse grid-cell key by
// rounding both to GridPrecision decimal places. Points inside the same
// cell share a hash.
func GridHash(lat, lng float64) string {
	return fmt.Sprintf("%.3f_%.3f", roundTo(lat, GridPrecision), roundTo(lng, GridPrecision))
}

// ClusterID scopes a grid hash to a province so identical cells in
// different provinces never collide.
func ClusterID(province, hash string) string {
	return province + "__" + hash
}

func roundTo(v float64, decimals int) float64 {
	pow := 1.0
	for i := 0; i < decimals; i++ {
		pow *= 10
	}
	if v >= 0 {
		return float64(int64(v*pow+0.5)) / pow
	}
	return float64(int64(v*pow-0.5)) / pow
}
