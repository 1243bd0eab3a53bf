package adapters

import (
	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/models/domain"
)

func MapAnalysisRequestToWire(req domain.AnalysisRequest) api.AnalyzeRequest {
	return api.AnalyzeRequest{
		GeoJSON:    RingToGeoJSON(req.Ring),
		Date1Start: req.Baseline.Start.Format(domain.DateLayout),
		Date1End:   req.Baseline.End.Format(domain.DateLayout),
		Date2Start: req.Comparison.Start.Format(domain.DateLayout),
		Date2End:   req.Comparison.End.Format(domain.DateLayout),
	}
}

func MapAnalyzeResponseToDomain(resp api.AnalyzeResponse) domain.AnalysisResult {
	return domain.AnalysisResult{
		TileURL:        resp.TileURL,
		GainSqKm:       resp.Stats.GainSqKm,
		LossSqKm:       resp.Stats.LossSqKm,
		PersistentSqKm: resp.Stats.PersistentSqKm,
	}
}

func MapResultDomainToApi(result domain.AnalysisResult) api.AnalysisResult {
	return api.AnalysisResult{
		TileURL:        result.TileURL,
		GainSqKm:       result.GainSqKm,
		LossSqKm:       result.LossSqKm,
		PersistentSqKm: result.PersistentSqKm,
	}
}

func MapErrorDomainToApi(err *domain.AnalysisError) api.AnalysisError {
	return api.AnalysisError{
		Kind:       string(err.Kind),
		Message:    err.Message,
		Detail:     err.Detail,
		Suggestion: err.Suggestion,
	}
}

func MapDateRangeDomainToApi(r domain.DateRange) api.DateRange {
	return api.DateRange{
		Start: r.Start.Format(domain.DateLayout),
		End:   r.End.Format(domain.DateLayout),
	}
}

func MapReportDomainToApi(report domain.Report) api.Report {
	return api.Report{
		Title:          report.Title,
		Region:         report.Region,
		Baseline:       MapDateRangeDomainToApi(report.Baseline),
		Comparison:     MapDateRangeDomainToApi(report.Comparison),
		GainSqKm:       report.GainSqKm,
		LossSqKm:       report.LossSqKm,
		PersistentSqKm: report.PersistentSqKm,
		TileURL:        report.TileURL,
	}
}
