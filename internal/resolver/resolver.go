package resolver

import "context"

// Result is a resolved panorama point. The resolver may snap the query
// coordinate to the nearest available imagery.
type Result struct {
	ImageryID string  `json:"imagery_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Resolver looks up the nearest outdoor panorama within radiusM meters of
// a coordinate. A nil Result with nil error means no panorama exists
// there; errors are reserved for transport or service failures. Callers
// treat both the same way: the mint attempt failed, try the next one.
type Resolver interface {
	Resolve(ctx context.Context, lat, lng float64, radiusM int) (*Result, error)
}
