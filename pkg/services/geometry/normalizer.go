package geometry

import (
	"fmt"
	"math"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/paulmach/orb"
)

const (
	// CircleVertexCount is the number of angular samples used when a drawn
	// circle is approximated as a regular polygon. The closing point brings
	// the ring to CircleVertexCount+1 points.
	CircleVertexCount = 64

	// Meters per degree of latitude, and per degree of longitude at the
	// equator. Local parallel length scales with cos(latitude).
	metersPerDegreeLat = 110574.0
	metersPerDegreeLng = 111320.0
)

// Normalize converts a drawn shape into the canonical closed-ring polygon
// representation used everywhere downstream. Pure; the input is never
// modified.
//
// Circles use an equirectangular local approximation: the metric radius is
// converted to independent longitude and latitude offsets. This is accurate
// for radii small relative to Earth's curvature (tens of km) and is not a
// geodesic buffer.
func Normalize(shape domain.DrawnShape) (orb.Ring, error) {
	switch s := shape.(type) {
	case domain.Circle:
		return circleToRing(s)
	case domain.PolygonShape:
		return closeRing(s.Ring)
	default:
		return nil, domain.NewUnsupportedShapeKind(fmt.Sprintf("%T", shape))
	}
}

// Validate checks the canonical ring invariants: at least four points,
// closed, no zero-length edges, finite coordinates within bounds.
func Validate(ring orb.Ring) error {
	if len(ring) < 4 {
		return fmt.Errorf("ring has %d points, need at least 4", len(ring))
	}
	if !ring.Closed() {
		return fmt.Errorf("ring is not closed")
	}
	for i, pt := range ring {
		if math.IsNaN(pt.Lon()) || math.IsInf(pt.Lon(), 0) ||
			math.IsNaN(pt.Lat()) || math.IsInf(pt.Lat(), 0) {
			return fmt.Errorf("point %d has non-finite coordinates", i)
		}
		if pt.Lon() < -180 || pt.Lon() > 180 || pt.Lat() < -90 || pt.Lat() > 90 {
			return fmt.Errorf("point %d (%v) is outside lng/lat bounds", i, pt)
		}
		if i > 0 && pt.Equal(ring[i-1]) {
			return fmt.Errorf("zero-length edge between points %d and %d", i-1, i)
		}
	}
	return nil
}

func circleToRing(c domain.Circle) (orb.Ring, error) {
	if c.RadiusMeters <= 0 {
		return nil, fmt.Errorf("circle radius must be positive, got %v", c.RadiusMeters)
	}

	parallel := metersPerDegreeLng * math.Cos(c.Center.Lat()*math.Pi/180)
	ring := make(orb.Ring, 0, CircleVertexCount+1)
	for i := 0; i < CircleVertexCount; i++ {
		theta := 2 * math.Pi * float64(i) / CircleVertexCount
		ring = append(ring, orb.Point{
			c.Center.Lon() + c.RadiusMeters*math.Cos(theta)/parallel,
			c.Center.Lat() + c.RadiusMeters*math.Sin(theta)/metersPerDegreeLat,
		})
	}
	ring = append(ring, ring[0])
	return ring, nil
}

func closeRing(ring orb.Ring) (orb.Ring, error) {
	if len(ring) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 distinct points, got %d", len(ring))
	}
	if !ring.Closed() {
		closed := make(orb.Ring, len(ring), len(ring)+1)
		copy(closed, ring)
		return append(closed, ring[0]), nil
	}
	return ring, nil
}
