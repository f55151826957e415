package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healixpharm/pharmpanel/internal/api"
	"github.com/healixpharm/pharmpanel/internal/config"
	"github.com/healixpharm/pharmpanel/internal/crypto"
	"github.com/healixpharm/pharmpanel/internal/session"
	"github.com/healixpharm/pharmpanel/internal/telemetry"
	"github.com/healixpharm/pharmpanel/internal/utils"
	"github.com/healixpharm/pharmpanel/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := utils.NewLogger(cfg.Log.Verbose, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	panels, err := newPanelStore(cfg.Session, logger)
	if err != nil {
		return err
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Brand:    cfg.App.Brand,
		Stats:    cfg.Dashboard.Stats,
		Renderer: renderer,
		Panels:   panels,
		Logger:   logger,
		Tracer:   tp.Tracer(telemetry.TracerName),
	})
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Server.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newPanelStore(cfg config.SessionConfig, logger *zap.Logger) (*session.PanelStore, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		logger.Warn("session.secret not set; using a random secret, panel state resets on restart")
		var err error
		if secret, err = crypto.RandomSecret(32); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}
	hashKey, blockKey, err := crypto.DeriveCookieKeys(secret)
	if err != nil {
		return nil, fmt.Errorf("derive cookie keys: %w", err)
	}
	store := session.NewCookieStore(hashKey, blockKey, cfg.Secure)
	return session.NewPanelStore(store, cfg.Name), nil
}
