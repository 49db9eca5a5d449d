package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sportsguide/epg-engine/internal/catalogs"
	catalogfixture "github.com/sportsguide/epg-engine/internal/catalogs/fixture"
	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/config"
	"github.com/sportsguide/epg-engine/internal/logging"
	"github.com/sportsguide/epg-engine/internal/metrics"
	"github.com/sportsguide/epg-engine/internal/pipeline"
	"github.com/sportsguide/epg-engine/internal/quality"
	"github.com/sportsguide/epg-engine/internal/render"
	"github.com/sportsguide/epg-engine/internal/resolver"
	"github.com/sportsguide/epg-engine/internal/schedule"
	lineupfixture "github.com/sportsguide/epg-engine/internal/schedule/fixture"
	"github.com/sportsguide/epg-engine/internal/store"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "epg-description-engine",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, metricsShutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		os.Exit(1)
	}

	condCatalog, varCatalog, err := catalogs.Load(ctx, catalogfixture.New())
	if err != nil {
		logging.Error(logger, "catalog load failed", err)
		os.Exit(1)
	}

	runner := pipeline.New(pipeline.Options{
		Provider: lineupProvider(cfg.Provider),
		Store:    store.NewMemoryStore(),
		Resolver: resolver.New(conditions.NewEvaluator(condCatalog)),
		Renderer: render.New(varCatalog),
		Catalog:  condCatalog,
		Writer:   quality.NewWriter(cfg.Quality.Dir, cfg.Quality.RetentionDays),
		Logger:   logger,
		Metrics:  recorder,
		Interval: cfg.GenerateInterval,
		Workers:  cfg.Workers,
	})

	var metricsServer *http.Server
	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		metricsServer = &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
		go func() {
			logging.Info(logger, "metrics server starting", "addr", metricsServer.Addr)
			if serveErr := metricsServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
				logging.Error(logger, "metrics server failed", serveErr)
			}
		}()
	}

	runner.Start(ctx)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = runner.Stop(shutdownCtx)
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics server shutdown failed", "error", err)
		}
	}
	if err := metricsShutdown(shutdownCtx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", "error", err)
	}
}

func lineupProvider(name string) schedule.LineupProvider {
	// Only the fixture source ships with the engine; real lineup providers
	// are wired in by the surrounding pipeline.
	_ = name
	return lineupfixture.New()
}
