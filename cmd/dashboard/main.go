package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/state-trends-dashboard/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/state-trends-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/state-trends-dashboard/internal/adapter/trends"
	"github.com/couchcryptid/state-trends-dashboard/internal/config"
	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/observability"
	"github.com/couchcryptid/state-trends-dashboard/internal/pipeline"
	"github.com/couchcryptid/state-trends-dashboard/internal/reference"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	defaultChar, err := domain.ParseCharacteristic(cfg.DefaultCharacteristic)
	if err != nil {
		logger.Error("invalid DEFAULT_CHARACTERISTIC", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := reference.Load(ctx, os.DirFS(cfg.DataDir))
	if err != nil {
		logger.Error("failed to load reference data", "error", err, "data_dir", cfg.DataDir)
		os.Exit(1)
	}
	metrics.ReferenceStates.Set(float64(store.Len()))
	logger.Info("reference data loaded", "states", store.Len(), "solutions", len(store.Solutions()))

	provider := trends.NewClient(cfg.TrendsBaseURL, cfg.TrendsTimeout, cfg.TrendsLanguage, cfg.TrendsTZ, metrics, logger)

	// Snapshot publishing is feature-flagged via KAFKA_ENABLED.
	var (
		sink   pipeline.SnapshotSink
		writer *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		metrics.SnapshotsEnabled.Set(1)
		logger.Info("snapshot publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSnapshotTopic)
	} else {
		logger.Info("snapshot publishing disabled")
	}

	if cfg.PositionalAbbreviations {
		logger.Warn("positional abbreviation mode enabled; provider must return all 51 states in alphabetical order")
	}
	p := pipeline.New(provider, store, sink, domain.JoinOptions{Positional: cfg.PositionalAbbreviations}, logger, metrics)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:                  cfg.HTTPAddr,
		CORSOrigins:           cfg.CORSOrigins,
		DefaultTerm:           cfg.DefaultTerm,
		DefaultCharacteristic: defaultChar,
		RequestTimeout:        cfg.TrendsTimeout * 3,
	}, p, store, store, metrics, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
