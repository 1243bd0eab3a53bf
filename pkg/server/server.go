package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analysishandlers "github.com/aqua-tools/aquascope/pkg/handlers/analysis"
	regionhandlers "github.com/aqua-tools/aquascope/pkg/handlers/region"
	searchhandlers "github.com/aqua-tools/aquascope/pkg/handlers/search"
	"github.com/aqua-tools/aquascope/pkg/services/config"

	aquascopemiddleware "github.com/aqua-tools/aquascope/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Regions   regionhandlers.Store
	Runner    analysishandlers.Runner
	Locator   searchhandlers.Locator
	MapConfig config.Map
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	regionHandler := regionhandlers.NewHandler(config.Dependencies.Regions)
	analysisHandler := analysishandlers.NewHandler(config.Dependencies.Runner, config.Dependencies.Regions)
	searchHandler := searchhandlers.NewHandler(config.Dependencies.Locator, config.Dependencies.MapConfig)

	router := chi.NewRouter()

	router.Use(aquascopemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Put("/region", regionHandler.SetRegion)
		r.Get("/region", regionHandler.GetRegion)
		r.Delete("/region", regionHandler.ClearRegion)
		r.Put("/periods/{period}", regionHandler.SetPeriod)

		r.Post("/analysis", analysisHandler.RunAnalysis)
		r.Get("/analysis", analysisHandler.GetStatus)
		r.Get("/report", analysisHandler.GetReport)

		r.Get("/search", searchHandler.Search)
		r.Get("/map/config", searchHandler.GetMapConfig)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
