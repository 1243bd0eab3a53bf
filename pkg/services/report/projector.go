// Package report derives the printable summary of a completed analysis.
package report

import (
	"github.com/aqua-tools/aquascope/pkg/models/domain"
)

const defaultTitle = "Water Change Detection Report"

// Project builds the fixed-schema report from a completed result. Pure:
// metrics are copied verbatim, nothing is recomputed or rounded, and the
// same inputs always produce the same report.
func Project(result domain.AnalysisResult, label string, baseline, comparison domain.DateRange) domain.Report {
	if label == "" {
		label = domain.DefaultRegionLabel
	}
	return domain.Report{
		Title:          defaultTitle,
		Region:         label,
		Baseline:       baseline,
		Comparison:     comparison,
		GainSqKm:       result.GainSqKm,
		LossSqKm:       result.LossSqKm,
		PersistentSqKm: result.PersistentSqKm,
		TileURL:        result.TileURL,
	}
}
