package main

import (
	"fmt"
	"net"
	"os"

	"github.com/aqua-tools/aquascope/pkg/server"
	"github.com/aqua-tools/aquascope/pkg/services/config"
	"github.com/aqua-tools/aquascope/pkg/services/region"
	"github.com/aqua-tools/aquascope/pkg/services/search"
	"github.com/aqua-tools/aquascope/pkg/services/session"
	"github.com/aqua-tools/aquascope/pkg/store/waterwatch"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the AquaScope web gateway",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the AquaScope configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store := region.NewStore()
	client := waterwatch.NewClient(waterwatch.Settings{
		BaseURL: cfg.Analysis.BaseURL,
		Timeout: cfg.Analysis.Timeout(),
	})
	sess := session.NewSession(store, client)
	geocoder := search.NewGeocoder(search.GeocoderConfig{
		BaseURL:        cfg.Geocoder.BaseURL,
		UserAgent:      cfg.Geocoder.UserAgent,
		RequestsPerSec: cfg.Geocoder.RequestsPerSec,
		MaxResults:     cfg.Geocoder.MaxResults,
	})

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Analysis service: `%s`", cfg.Analysis.BaseURL)

	host := cfg.Server.Host
	port := cfg.Server.Port
	if env := os.Getenv("SERVER_HOST"); env != "" {
		host = env
	}
	if env := os.Getenv("SERVER_PORT"); env != "" {
		port = env
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Regions:   store,
			Runner:    sess,
			Locator:   geocoder,
			MapConfig: cfg.Map,
		},
	})

	return webAPI.Start()
}
