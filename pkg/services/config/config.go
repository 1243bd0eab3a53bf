// Package config loads the application configuration file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Analysis struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (a Analysis) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type Geocoder struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	RequestsPerSec int    `mapstructure:"requests_per_sec"`
	MaxResults     int    `mapstructure:"max_results"`
}

// Map is the static configuration handed to the map collaborator. Keeping
// the marker icon URLs here replaces the original presentation-layer global
// override of the default icon set.
type Map struct {
	TileURL         string  `mapstructure:"tile_url"`
	Attribution     string  `mapstructure:"attribution"`
	CenterLng       float64 `mapstructure:"center_lng"`
	CenterLat       float64 `mapstructure:"center_lat"`
	Zoom            int     `mapstructure:"zoom"`
	MarkerIconURL   string  `mapstructure:"marker_icon_url"`
	MarkerRetinaURL string  `mapstructure:"marker_retina_url"`
	MarkerShadowURL string  `mapstructure:"marker_shadow_url"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Analysis Analysis `mapstructure:"analysis"`
	Geocoder Geocoder `mapstructure:"geocoder"`
	Map      Map      `mapstructure:"map"`
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("analysis.base_url", "http://127.0.0.1:8000")
	v.SetDefault("analysis.timeout_seconds", 120)
	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.user_agent", "aquascope")
	v.SetDefault("geocoder.requests_per_sec", 1)
	v.SetDefault("geocoder.max_results", 5)
	v.SetDefault("map.tile_url", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.attribution", "© OpenStreetMap contributors")
	v.SetDefault("map.center_lng", 76.78)
	v.SetDefault("map.center_lat", 30.74)
	v.SetDefault("map.zoom", 12)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}
