package domain

// Report is the printable projection of a completed analysis. It is derived
// on demand and never persisted; metrics are copied verbatim from the result.
type Report struct {
	Title          string
	Region         string
	Baseline       DateRange
	Comparison     DateRange
	GainSqKm       float64
	LossSqKm       float64
	PersistentSqKm float64
	TileURL        string
}
