package domain

import "github.com/paulmach/orb"

// AnalysisRequest is a snapshot taken at submit time. Later edits to the
// region or the date ranges do not affect an in-flight request.
type AnalysisRequest struct {
	Ring       orb.Ring
	Baseline   DateRange
	Comparison DateRange
}

// AnalysisResult holds the three change-detection area metrics together with
// the overlay produced by the analysis service. Immutable once received.
type AnalysisResult struct {
	TileURL        string
	GainSqKm       float64
	LossSqKm       float64
	PersistentSqKm float64
}
