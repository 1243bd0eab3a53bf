package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aqua-tools/aquascope/pkg/models/api"
	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/aqua-tools/aquascope/pkg/services/config"
	"github.com/aqua-tools/aquascope/pkg/services/region"
	"github.com/aqua-tools/aquascope/pkg/services/search"
	"github.com/aqua-tools/aquascope/pkg/services/session"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

type mockLocator struct {
	mock.Mock
}

func (m *mockLocator) Lookup(ctx context.Context, query string) ([]search.Candidate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]search.Candidate), args.Error(1)
}

func newTestServer(t *testing.T, submitter *mockSubmitter, locator *mockLocator) (*httptest.Server, *region.Store) {
	t.Helper()

	logger := zerolog.Nop()
	store := region.NewStore()
	sess := session.NewSession(store, submitter)

	webAPI := NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Regions: store,
			Runner:  sess,
			Locator: locator,
			MapConfig: config.Map{
				TileURL:   "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
				CenterLng: 76.78,
				CenterLat: 30.74,
				Zoom:      12,
			},
		},
	})

	testServer := httptest.NewServer(webAPI.Router())
	t.Cleanup(testServer.Close)
	return testServer, store
}

func putJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(raw))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestWebAPI_RegionLifecycle(t *testing.T) {
	testServer, _ := newTestServer(t, new(mockSubmitter), new(mockLocator))

	resp, err := http.Get(testServer.URL + "/api/v1/region")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = putJSON(t, testServer.URL+"/api/v1/region", api.DrawnShape{
		Kind:         "circle",
		Center:       []float64{76.78, 30.74},
		RadiusMeters: 500,
		Label:        "Sukhna Lake",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(testServer.URL + "/api/v1/region")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.Region
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Sukhna Lake", got.Label)
	require.NotNil(t, got.Geometry)
	assert.Equal(t, "Polygon", got.Geometry.Type)

	req, err := http.NewRequest(http.MethodDelete, testServer.URL+"/api/v1/region", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(testServer.URL + "/api/v1/region")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWebAPI_SetRegion_UnsupportedKind(t *testing.T) {
	testServer, _ := newTestServer(t, new(mockSubmitter), new(mockLocator))

	resp := putJSON(t, testServer.URL+"/api/v1/region", api.DrawnShape{Kind: "rectangle"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var apiErr api.AnalysisError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	assert.Equal(t, string(domain.ErrUnsupportedShapeKind), apiErr.Kind)
	assert.NotEmpty(t, apiErr.Suggestion)
}

func TestWebAPI_SetPeriod(t *testing.T) {
	testServer, store := newTestServer(t, new(mockSubmitter), new(mockLocator))

	resp := putJSON(t, testServer.URL+"/api/v1/periods/baseline", api.DateRange{
		Start: "2023-01-01",
		End:   "2023-03-31",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	stored := store.DateRange(domain.PeriodBaseline)
	assert.Equal(t, "2023-01-01 to 2023-03-31", stored.String())

	resp = putJSON(t, testServer.URL+"/api/v1/periods/baseline", api.DateRange{Start: "bad", End: "2023-03-31"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = putJSON(t, testServer.URL+"/api/v1/periods/neither", api.DateRange{Start: "2023-01-01", End: "2023-03-31"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWebAPI_Analysis(t *testing.T) {
	submitter := new(mockSubmitter)
	testServer, _ := newTestServer(t, submitter, new(mockLocator))

	// Preconditions missing: no region selected yet.
	resp, err := http.Post(testServer.URL+"/api/v1/analysis", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var apiErr api.AnalysisError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	resp.Body.Close()
	assert.Equal(t, string(domain.ErrNoRegionSelected), apiErr.Kind)

	putJSON(t, testServer.URL+"/api/v1/region", api.DrawnShape{
		Kind:         "circle",
		Center:       []float64{76.78, 30.74},
		RadiusMeters: 500,
	}).Body.Close()
	putJSON(t, testServer.URL+"/api/v1/periods/baseline", api.DateRange{Start: "2023-01-01", End: "2023-03-31"}).Body.Close()
	putJSON(t, testServer.URL+"/api/v1/periods/comparison", api.DateRange{Start: "2024-01-01", End: "2024-03-31"}).Body.Close()

	submitter.On("Submit", mock.Anything, mock.Anything).Return(&domain.AnalysisResult{
		TileURL:        "http://x/tile",
		GainSqKm:       1.2345,
		LossSqKm:       0.5,
		PersistentSqKm: 10.0,
	}, nil)

	resp, err = http.Post(testServer.URL+"/api/v1/analysis", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result api.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()
	assert.Equal(t, 1.2345, result.GainSqKm)

	resp, err = http.Get(testServer.URL + "/api/v1/analysis")
	require.NoError(t, err)
	var status api.AnalysisStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.Equal(t, "succeeded", status.State)
	require.NotNil(t, status.Result)
	assert.Equal(t, "http://x/tile", status.Result.TileURL)

	resp, err = http.Get(testServer.URL + "/api/v1/report")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rpt api.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rpt))
	resp.Body.Close()
	assert.Equal(t, 1.2345, rpt.GainSqKm)
	assert.Equal(t, domain.DefaultRegionLabel, rpt.Region)
	assert.Equal(t, "2023-01-01", rpt.Baseline.Start)

	submitter.AssertExpectations(t)
}

func TestWebAPI_Analysis_RemoteFailure(t *testing.T) {
	submitter := new(mockSubmitter)
	testServer, _ := newTestServer(t, submitter, new(mockLocator))

	putJSON(t, testServer.URL+"/api/v1/region", api.DrawnShape{
		Kind:         "circle",
		Center:       []float64{76.78, 30.74},
		RadiusMeters: 500,
	}).Body.Close()
	putJSON(t, testServer.URL+"/api/v1/periods/baseline", api.DateRange{Start: "2023-01-01", End: "2023-03-31"}).Body.Close()
	putJSON(t, testServer.URL+"/api/v1/periods/comparison", api.DateRange{Start: "2024-01-01", End: "2024-03-31"}).Body.Close()

	submitter.On("Submit", mock.Anything, mock.Anything).
		Return(nil, domain.NewNoDataFound("No clear images"))

	resp, err := http.Post(testServer.URL+"/api/v1/analysis", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var apiErr api.AnalysisError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	resp.Body.Close()
	assert.Equal(t, string(domain.ErrNoDataFound), apiErr.Kind)
	assert.Equal(t, "No clear images", apiErr.Detail)

	resp, err = http.Get(testServer.URL + "/api/v1/report")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "no report without a completed result")
}

func TestWebAPI_Search(t *testing.T) {
	locator := new(mockLocator)
	testServer, _ := newTestServer(t, new(mockSubmitter), locator)

	locator.On("Lookup", mock.Anything, "chandigarh").Return([]search.Candidate{
		{Label: "Chandigarh, India", Point: orb.Point{76.7794, 30.7333}},
	}, nil)

	resp, err := http.Get(testServer.URL + "/api/v1/search?q=chandigarh")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var candidates []api.SearchCandidate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&candidates))
	resp.Body.Close()
	require.Len(t, candidates, 1)
	assert.Equal(t, "Chandigarh, India", candidates[0].Label)
	assert.Equal(t, 76.7794, candidates[0].Lng)
	assert.Equal(t, 30.7333, candidates[0].Lat)

	locator.AssertExpectations(t)
}

func TestWebAPI_MapConfig(t *testing.T) {
	testServer, _ := newTestServer(t, new(mockSubmitter), new(mockLocator))

	resp, err := http.Get(testServer.URL + "/api/v1/map/config")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg api.MapConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	resp.Body.Close()
	assert.Equal(t, "https://tile.openstreetmap.org/{z}/{x}/{y}.png", cfg.TileURL)
	assert.Equal(t, []float64{76.78, 30.74}, cfg.Center)
	assert.Equal(t, 12, cfg.Zoom)
}
