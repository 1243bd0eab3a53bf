package api

import "github.com/paulmach/orb/geojson"

// DrawnShape is the gateway's shape payload. Kind selects which of the other
// fields are read; unknown kinds are rejected, never dropped.
type DrawnShape struct {
	Kind         string      `json:"kind"`
	Center       []float64   `json:"center,omitempty"`
	RadiusMeters float64     `json:"radius_meters,omitempty"`
	Ring         [][]float64 `json:"ring,omitempty"`
	Label        string      `json:"label,omitempty"`
}

type Region struct {
	Label    string            `json:"label"`
	Geometry *geojson.Geometry `json:"geometry"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
