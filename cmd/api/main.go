package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kilmacud/teamsheet/internal/app"
	"github.com/kilmacud/teamsheet/internal/config"
	"github.com/kilmacud/teamsheet/internal/observability"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if cfg.UptraceEnabled {
		shutdownUptrace, err := observability.InitUptrace(cfg, logger)
		if err != nil {
			logger.Error("init uptrace", "error", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownUptrace(ctx); err != nil {
				logger.Error("shutdown uptrace", "error", err)
			}
		}()
	}

	if cfg.PyroscopeEnabled {
		stopPyroscope, err := observability.InitPyroscope(cfg, logger)
		if err != nil {
			logger.Error("init pyroscope", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := stopPyroscope(); err != nil {
				logger.Error("stop pyroscope", "error", err)
			}
		}()
	}

	if cfg.PprofEnabled {
		pprofSrv, err := observability.StartPprofServer(cfg, logger)
		if err != nil {
			logger.Error("start pprof server", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
				logger.Error("stop pprof server", "error", err)
			}
		}()
	}

	srv, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			"addr", cfg.HTTPAddr,
			"env", cfg.AppEnv,
			"storage", cfg.StorageDriver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}
