// Package search resolves free-text place queries to map coordinates.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// MinQueryLength keeps noise queries away from the geocoding provider.
const MinQueryLength = 3

// Candidate is one ordered search result.
type Candidate struct {
	Point orb.Point
	Label string
}

type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestsPerSec int
	Timeout        time.Duration
	MaxResults     int
}

// Geocoder queries a Nominatim-compatible endpoint. Calls are rate limited
// because public geocoding providers enforce per-client quotas.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	config     GeocoderConfig
}

func NewGeocoder(config GeocoderConfig) *Geocoder {
	if config.BaseURL == "" {
		config.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if config.RequestsPerSec == 0 {
		config.RequestsPerSec = 1
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxResults == 0 {
		config.MaxResults = 5
	}

	return &Geocoder{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSec), 1),
		config:  config,
	}
}

// Lookup returns ordered candidates for a query. Queries shorter than
// MinQueryLength return no candidates and issue no remote call.
func (g *Geocoder) Lookup(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return nil, nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {strconv.Itoa(g.config.MaxResults)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("User-Agent", g.config.UserAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			zerolog.Ctx(ctx).Warn().
				Str("lat", r.Lat).
				Str("lon", r.Lon).
				Msg("skipping candidate with unparsable coordinates")
			continue
		}
		candidates = append(candidates, Candidate{
			Point: orb.Point{lon, lat},
			Label: r.DisplayName,
		})
	}

	return candidates, nil
}
