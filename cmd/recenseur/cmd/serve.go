package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Nathalie1962/recenseur-backend/api/openapi"
	"github.com/Nathalie1962/recenseur-backend/internal/api/handlers"
	"github.com/Nathalie1962/recenseur-backend/internal/api/middleware"
	"github.com/Nathalie1962/recenseur-backend/internal/commute"
	"github.com/Nathalie1962/recenseur-backend/internal/config"
	"github.com/Nathalie1962/recenseur-backend/internal/navitia"
	"github.com/Nathalie1962/recenseur-backend/internal/store"
	"github.com/Nathalie1962/recenseur-backend/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recenseur API server",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	sink := store.NewJSONLSink(cfg.Store.Path)

	var planner navitia.JourneyPlanner
	if cfg.Navitia.Enabled() {
		planner = navitia.NewJourneysClient(cfg.Navitia.Key,
			navitia.WithBaseURL(cfg.Navitia.BaseURL),
			navitia.WithCoverage(cfg.Navitia.Coverage),
			navitia.WithMaxJourneys(cfg.Navitia.MaxJourneys),
			navitia.WithTimeout(cfg.Navitia.Timeout),
			navitia.WithRateLimiter(rate.NewLimiter(
				rate.Limit(cfg.Navitia.RateLimit.PerSecond),
				cfg.Navitia.RateLimit.Burst,
			)),
		)
		log.Info("navitia journey planner enabled",
			"coverage", cfg.Navitia.Coverage)
	} else {
		log.Info("navitia key not set, using static commute table")
	}

	estimator := commute.NewEstimator(planner, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.BearerAuth(cfg.Auth.Token))

	health := handlers.NewHealthHandler(sink)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("recenseur", Version))
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler())
	handlers.RegisterExtractRoutes(api, handlers.NewExtractHandler())
	handlers.RegisterDedupeRoutes(api, handlers.NewDedupeHandler())
	handlers.RegisterPersistRoutes(api, handlers.NewPersistHandler(sink))
	handlers.RegisterCommuteRoutes(api, handlers.NewCommuteHandler(estimator))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "store", cfg.Store.Path)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}
