package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is Earth's mean radius in kilometers
const EarthRadiusKm = 6371.0

// HaversineKm calculates the great-circle distance between two points in
// kilometers
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// DestinationPoint calculates the destination point given a start point,
// bearing (degrees, 0-360), and distance in kilometers
func DestinationPoint(lat, lng, bearing, distanceKm float64) (float64, float64) {
	p := s2.LatLngFromDegrees(lat, lng)
	bearingRad := bearing * math.Pi / 180
	angularDistance := distanceKm / EarthRadiusKm

	latRad := p.Lat.Radians()
	lngRad := p.Lng.Radians()

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(angularDistance) +
		math.Cos(latRad)*math.Sin(angularDistance)*math.Cos(bearingRad))

	lng2 := lngRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(angularDistance)*math.Cos(latRad),
		math.Cos(angularDistance)-math.Sin(latRad)*math.Sin(lat2))

	return lat2 * 180 / math.Pi, lng2 * 180 / math.Pi
}

// Centroid calculates the arithmetic centroid of a set of points.
// Adequate at city scale; seeds never span enough longitude for
// wrap-around to matter.
func Centroid(lats, lngs []float64) (float64, float64) {
	if len(lats) == 0 {
		return 0, 0
	}
	var sumLat, sumLng float64
	for i := range lats {
		sumLat += lats[i]
		sumLng += lngs[i]
	}
	n := float64(len(lats))
	return sumLat / n, sumLng / n
}
