package adapters

import (
	"fmt"

	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// MapShapeApiToDomain converts the gateway shape payload into the sealed
// domain shape set. Unknown kinds surface as UnsupportedShapeKind so the
// normalizer's contract holds end to end.
func MapShapeApiToDomain(shape api.DrawnShape) (domain.DrawnShape, error) {
	switch shape.Kind {
	case "circle":
		if len(shape.Center) != 2 {
			return nil, fmt.Errorf("circle center must be [lng, lat], got %d values", len(shape.Center))
		}
		return domain.Circle{
			Center:       orb.Point{shape.Center[0], shape.Center[1]},
			RadiusMeters: shape.RadiusMeters,
		}, nil
	case "polygon":
		ring := make(orb.Ring, 0, len(shape.Ring))
		for _, pt := range shape.Ring {
			if len(pt) != 2 {
				return nil, fmt.Errorf("polygon vertex must be [lng, lat], got %d values", len(pt))
			}
			ring = append(ring, orb.Point{pt[0], pt[1]})
		}
		return domain.PolygonShape{Ring: ring}, nil
	default:
		return nil, domain.NewUnsupportedShapeKind(shape.Kind)
	}
}

// RingToGeoJSON wraps a canonical ring as a GeoJSON Polygon geometry, the
// only geometry the analysis service accepts.
func RingToGeoJSON(ring orb.Ring) *geojson.Geometry {
	return geojson.NewGeometry(orb.Polygon{ring})
}

func MapRegionDomainToApi(roi domain.RegionOfInterest) api.Region {
	return api.Region{
		Label:    roi.Label,
		Geometry: RingToGeoJSON(roi.Ring),
	}
}
