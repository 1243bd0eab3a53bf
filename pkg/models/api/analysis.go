package api

import "github.com/paulmach/orb/geojson"

// AnalyzeRequest is the wire body sent to the analysis service.
type AnalyzeRequest struct {
	GeoJSON    *geojson.Geometry `json:"geojson"`
	Date1Start string            `json:"date1_start"`
	Date1End   string            `json:"date1_end"`
	Date2Start string            `json:"date2_start"`
	Date2End   string            `json:"date2_end"`
}

// AnalyzeResponse is the analysis service's success body.
type AnalyzeResponse struct {
	TileURL string       `json:"tile_url"`
	Stats   AnalyzeStats `json:"stats"`
}

type AnalyzeStats struct {
	GainSqKm       float64 `json:"gain_sqkm"`
	LossSqKm       float64 `json:"loss_sqkm"`
	PersistentSqKm float64 `json:"persistent_sqkm"`
}

// RemoteError is the analysis service's failure body. Detail may be absent.
type RemoteError struct {
	Detail string `json:"detail"`
}

type AnalysisResult struct {
	TileURL        string  `json:"tile_url"`
	GainSqKm       float64 `json:"gain_sqkm"`
	LossSqKm       float64 `json:"loss_sqkm"`
	PersistentSqKm float64 `json:"persistent_sqkm"`
}

type AnalysisError struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type AnalysisStatus struct {
	State  string          `json:"state"`
	Result *AnalysisResult `json:"result,omitempty"`
	Error  *AnalysisError  `json:"error,omitempty"`
}

type Report struct {
	Title          string    `json:"title"`
	Region         string    `json:"region"`
	Baseline       DateRange `json:"baseline"`
	Comparison     DateRange `json:"comparison"`
	GainSqKm       float64   `json:"gain_sqkm"`
	LossSqKm       float64   `json:"loss_sqkm"`
	PersistentSqKm float64   `json:"persistent_sqkm"`
	TileURL        string    `json:"tile_url"`
}
