package region

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aqua-tools/aquascope/pkg/adapters"
	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/aqua-tools/aquascope/pkg/services/geometry"
	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
)

// Store is the region-store surface the gateway needs.
type Store interface {
	SetRegion(ring orb.Ring, label string)
	ClearRegion()
	CurrentRegion() (domain.RegionOfInterest, bool)
	SetDateRange(which domain.Period, r domain.DateRange)
	DateRange(which domain.Period) domain.DateRange
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// SetRegion normalizes the drawn shape and atomically replaces the region.
func (h *Handler) SetRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.DrawnShape
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid shape payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	shape, err := adapters.MapShapeApiToDomain(payload)
	if err != nil {
		writeShapeError(w, err)
		return
	}

	ring, err := geometry.Normalize(shape)
	if err != nil {
		writeShapeError(w, err)
		return
	}

	if err := geometry.Validate(ring); err != nil {
		http.Error(w, "shape violates polygon invariants: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.store.SetRegion(ring, payload.Label)
	logger.Info().Str("label", payload.Label).Int("points", len(ring)).Msg("region replaced")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRegion(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	roi, ok := h.store.CurrentRegion()
	if !ok {
		http.Error(w, "no region of interest selected", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapRegionDomainToApi(roi)); err != nil {
		logger.Error().Err(err).Msg("failed to encode region")
	}
}

func (h *Handler) ClearRegion(w http.ResponseWriter, r *http.Request) {
	h.store.ClearRegion()
	w.WriteHeader(http.StatusNoContent)
}

// SetPeriod replaces one of the two compared date ranges. Inverted ranges
// are accepted here; the session validates them when an analysis starts.
func (h *Handler) SetPeriod(w http.ResponseWriter, r *http.Request) {
	which := domain.Period(chi.URLParam(r, "period"))
	if which != domain.PeriodBaseline && which != domain.PeriodComparison {
		http.Error(w, "period must be 'baseline' or 'comparison'", http.StatusNotFound)
		return
	}

	var payload api.DateRange
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid period payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	start, err := time.Parse(domain.DateLayout, payload.Start)
	if err != nil {
		http.Error(w, "invalid 'start' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(domain.DateLayout, payload.End)
	if err != nil {
		http.Error(w, "invalid 'end' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	h.store.SetDateRange(which, domain.DateRange{Start: start, End: end})
	w.WriteHeader(http.StatusNoContent)
}

func writeShapeError(w http.ResponseWriter, err error) {
	if ae, ok := domain.AsAnalysisError(err); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(adapters.MapErrorDomainToApi(ae))
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
