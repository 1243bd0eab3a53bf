// Package waterwatch is the HTTP client for the remote water change-detection
// service. It owns the wire contract and turns every transport or HTTP
// failure into a classified domain error; raw transport errors never reach
// callers.
package waterwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aqua-tools/aquascope/pkg/adapters"
	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Settings struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(settings Settings) *Client {
	timeout := settings.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit runs one remote analysis. Each call is an independent remote
// invocation; there is no caching and no retry.
func (c *Client) Submit(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	logger := zerolog.Ctx(ctx)

	body, err := json.Marshal(adapters.MapAnalysisRequestToWire(req))
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyze request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyze request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Info().
		Str("baseline", req.Baseline.String()).
		Str("comparison", req.Comparison.String()).
		Msg("submitting analysis request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error().Err(err).Msg("analysis service unreachable")
		return nil, domain.NewTransportUnavailable(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportUnavailable(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classify(resp.StatusCode, raw)
	}

	var decoded api.AnalyzeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domain.NewUnclassifiedRemote(resp.StatusCode, "malformed success body: "+err.Error())
	}

	result := adapters.MapAnalyzeResponseToDomain(decoded)
	logger.Info().
		Float64("gain_sqkm", result.GainSqKm).
		Float64("loss_sqkm", result.LossSqKm).
		Float64("persistent_sqkm", result.PersistentSqKm).
		Msg("analysis completed")

	return &result, nil
}

// classify maps a non-2xx response onto the error taxonomy. The service's
// detail string travels verbatim where present.
func classify(status int, raw []byte) *domain.AnalysisError {
	var remote api.RemoteError
	_ = json.Unmarshal(raw, &remote)
	detail := remote.Detail

	switch {
	case status == http.StatusNotFound:
		return domain.NewNoDataFound(detail)
	case status >= 500 && indicatesNoImagery(detail):
		return domain.NewNoDataFound(detail)
	case status >= 500:
		return domain.NewServerFault(detail)
	default:
		return domain.NewUnclassifiedRemote(status, detail)
	}
}

func indicatesNoImagery(detail string) bool {
	return strings.Contains(strings.ToLower(detail), "no clear images")
}
