package api

type SearchCandidate struct {
	Label string  `json:"label"`
	Lng   float64 `json:"lng"`
	Lat   float64 `json:"lat"`
}

// MapConfig is static configuration handed to the map collaborator: the tile
// layer, the marker icon set and the initial viewport.
type MapConfig struct {
	TileURL         string    `json:"tile_url"`
	Attribution     string    `json:"attribution"`
	Center          []float64 `json:"center"`
	Zoom            int       `json:"zoom"`
	MarkerIconURL   string    `json:"marker_icon_url"`
	MarkerRetinaURL string    `json:"marker_retina_url"`
	MarkerShadowURL string    `json:"marker_shadow_url"`
}
