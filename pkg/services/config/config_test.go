package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 0.0.0.0
  port: "9090"
analysis:
  base_url: http://analysis:8000
  timeout_seconds: 30
geocoder:
  user_agent: aquascope-dev
map:
  center_lng: 76.78
  center_lat: 30.74
  zoom: 13
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://analysis:8000", cfg.Analysis.BaseURL)
	assert.Equal(t, 30, cfg.Analysis.TimeoutSeconds)
	assert.Equal(t, "aquascope-dev", cfg.Geocoder.UserAgent)
	assert.Equal(t, 13, cfg.Map.Zoom)

	// Defaults fill what the file leaves out.
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
	assert.Equal(t, 1, cfg.Geocoder.RequestsPerSec)
	assert.NotEmpty(t, cfg.Map.TileURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
