package analysis

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aqua-tools/aquascope/pkg/adapters"
	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/aqua-tools/aquascope/pkg/services/report"
	"github.com/aqua-tools/aquascope/pkg/services/session"
	"github.com/rs/zerolog"
)

// Runner is the analysis-session surface the gateway needs.
type Runner interface {
	RequestAnalysis(ctx context.Context) (*domain.AnalysisResult, error)
	Snapshot() session.Snapshot
}

// RegionReader supplies the label and periods the report projection needs.
type RegionReader interface {
	CurrentRegion() (domain.RegionOfInterest, bool)
	DateRange(which domain.Period) domain.DateRange
}

type Handler struct {
	runner  Runner
	regions RegionReader
}

func NewHandler(runner Runner, regions RegionReader) *Handler {
	return &Handler{runner: runner, regions: regions}
}

// RunAnalysis drives the session synchronously and reports the outcome.
func (h *Handler) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	result, err := h.runner.RequestAnalysis(ctx)
	if err != nil {
		writeAnalysisError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapResultDomainToApi(*result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode analysis result")
	}
}

// GetStatus returns the session state with the current result or error.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	snap := h.runner.Snapshot()
	status := api.AnalysisStatus{State: string(snap.State)}
	if snap.Result != nil {
		result := adapters.MapResultDomainToApi(*snap.Result)
		status.Result = &result
	}
	if snap.Err != nil {
		apiErr := adapters.MapErrorDomainToApi(snap.Err)
		status.Error = &apiErr
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		logger.Error().Err(err).Msg("failed to encode analysis status")
	}
}

// GetReport projects the completed result into the printable report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	snap := h.runner.Snapshot()
	if snap.Result == nil {
		http.Error(w, "no completed analysis to report on", http.StatusNotFound)
		return
	}

	label := ""
	if roi, ok := h.regions.CurrentRegion(); ok {
		label = roi.Label
	}

	projected := report.Project(
		*snap.Result,
		label,
		h.regions.DateRange(domain.PeriodBaseline),
		h.regions.DateRange(domain.PeriodComparison),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(projected)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func writeAnalysisError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	ae, ok := domain.AsAnalysisError(err)
	if !ok {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Warn().Str("kind", string(ae.Kind)).Str("detail", ae.Detail).Msg("analysis request rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForKind(ae.Kind))
	_ = json.NewEncoder(w).Encode(adapters.MapErrorDomainToApi(ae))
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrNoRegionSelected, domain.ErrInvalidDateRange:
		return http.StatusUnprocessableEntity
	case domain.ErrAlreadyRunning:
		return http.StatusConflict
	case domain.ErrNoDataFound:
		return http.StatusNotFound
	case domain.ErrTransportUnavailable, domain.ErrServerFault:
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
