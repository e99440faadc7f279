package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/hitting-tracker/internal/app"
	"github.com/riskibarqy/hitting-tracker/internal/config"
	"github.com/riskibarqy/hitting-tracker/internal/observability"
	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:          cfg.LogLevel,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.AppEnv,
	})
	defer func() { _ = logger.Sync() }()

	logger, shutdownTelemetry, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	logging.SetDefault(logger)

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	pprofSrv := observability.StartPprofServer(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		runErr = errors.Join(runErr, err)
	}
	if err := cleanup(); err != nil {
		logger.Error("release storage failed", "error", err)
		runErr = errors.Join(runErr, err)
	}
	if err := observability.StopPprofServer(shutdownCtx, pprofSrv, logger); err != nil {
		logger.Warn("pprof shutdown failed", "error", err)
	}
	if err := stopProfiler(); err != nil {
		logger.Warn("pyroscope stop failed", "error", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Warn("uptrace shutdown failed", "error", err)
	}

	logger.Info("http server stopped")
	return runErr
}
