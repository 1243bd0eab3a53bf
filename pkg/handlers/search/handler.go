package search

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/services/config"
	"github.com/aqua-tools/aquascope/pkg/services/search"
	"github.com/rs/zerolog"
)

// Locator resolves free-text queries to map candidates.
type Locator interface {
	Lookup(ctx context.Context, query string) ([]search.Candidate, error)
}

// Handler serves place search and the static map-collaborator configuration.
// Debouncing happens on the typing side; the gateway answers every query it
// receives.
type Handler struct {
	locator   Locator
	mapConfig config.Map
}

func NewHandler(locator Locator, mapConfig config.Map) *Handler {
	return &Handler{locator: locator, mapConfig: mapConfig}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	query := r.URL.Query().Get("q")

	candidates, err := h.locator.Lookup(ctx, query)
	if err != nil {
		logger.Error().Err(err).Str("query", query).Msg("search lookup failed")
		http.Error(w, "search provider unavailable", http.StatusBadGateway)
		return
	}

	response := make([]api.SearchCandidate, 0, len(candidates))
	for _, c := range candidates {
		response = append(response, api.SearchCandidate{
			Label: c.Label,
			Lng:   c.Point.Lon(),
			Lat:   c.Point.Lat(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode search candidates")
	}
}

func (h *Handler) GetMapConfig(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := api.MapConfig{
		TileURL:         h.mapConfig.TileURL,
		Attribution:     h.mapConfig.Attribution,
		Center:          []float64{h.mapConfig.CenterLng, h.mapConfig.CenterLat},
		Zoom:            h.mapConfig.Zoom,
		MarkerIconURL:   h.mapConfig.MarkerIconURL,
		MarkerRetinaURL: h.mapConfig.MarkerRetinaURL,
		MarkerShadowURL: h.mapConfig.MarkerShadowURL,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode map config")
	}
}
