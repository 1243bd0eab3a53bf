package domain

import "github.com/paulmach/orb"

// DrawnShape is a primitive the user finished drawing on the map.
// The set of kinds is closed; anything else is rejected by the normalizer.
type DrawnShape interface {
	shapeKind() string
}

// Circle is a center point plus a metric radius.
type Circle struct {
	Center       orb.Point
	RadiusMeters float64
}

// PolygonShape carries a ring drawn vertex by vertex.
type PolygonShape struct {
	Ring orb.Ring
}

func (Circle) shapeKind() string       { return "circle" }
func (PolygonShape) shapeKind() string { return "polygon" }

const DefaultRegionLabel = "Selected Region"

// RegionOfInterest is the single polygon area selected for analysis.
// Replacement is atomic; there is never a partially updated region.
type RegionOfInterest struct {
	Ring  orb.Ring
	Label string
}
