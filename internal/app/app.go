package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streamarchive/catalogd/internal/catalog"
	"github.com/streamarchive/catalogd/internal/config"
	"github.com/streamarchive/catalogd/internal/httpserver"
	"github.com/streamarchive/catalogd/internal/httpserver/deps"
	"github.com/streamarchive/catalogd/internal/logger"
	"github.com/streamarchive/catalogd/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// The data dir is only read per-request, but a missing one at boot
	// is almost always a deployment mistake worth flagging early.
	if _, err := os.Stat(cfg.DataDir); err != nil {
		loggerClient.Warn("data directory not accessible at startup",
			logger.String("dir", cfg.DataDir),
			logger.Error(err))
	}

	svc := catalog.NewService(cfg.DataDir, cfg.Collections, loggerClient)

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		Catalog:   svc,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting catalogd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("catalogd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("serving catalog",
		logger.String("data_dir", a.cfg.DataDir),
		logger.Int("collections", len(a.cfg.Collections)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ catalogd stopped cleanly")
	return nil
}
