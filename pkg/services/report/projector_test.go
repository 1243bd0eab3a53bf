package report

import (
	"testing"
	"time"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestProject_CopiesMetricsVerbatim(t *testing.T) {
	result := domain.AnalysisResult{
		TileURL:        "http://x/tile",
		GainSqKm:       1.2345,
		LossSqKm:       0.5,
		PersistentSqKm: 10.0,
	}
	baseline := domain.DateRange{
		Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	comparison := domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	got := Project(result, "Sukhna Lake", baseline, comparison)

	assert.Equal(t, 1.2345, got.GainSqKm)
	assert.Equal(t, 0.5, got.LossSqKm)
	assert.Equal(t, 10.0, got.PersistentSqKm)
	assert.Equal(t, "http://x/tile", got.TileURL)
	assert.Equal(t, "Sukhna Lake", got.Region)
	assert.Equal(t, baseline, got.Baseline)
	assert.Equal(t, comparison, got.Comparison)
}

func TestProject_IsIdempotent(t *testing.T) {
	result := domain.AnalysisResult{GainSqKm: 3.3, LossSqKm: 1.1, PersistentSqKm: 2.2}
	baseline := domain.DateRange{Start: time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)}
	comparison := domain.DateRange{Start: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)}

	first := Project(result, "delta", baseline, comparison)
	second := Project(result, "delta", baseline, comparison)

	assert.Equal(t, first, second)
}

func TestProject_EmptyLabelGetsPlaceholder(t *testing.T) {
	got := Project(domain.AnalysisResult{}, "", domain.DateRange{}, domain.DateRange{})
	assert.Equal(t, domain.DefaultRegionLabel, got.Region)
}
