package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"groeipaden_app/internal/catalog"
	"groeipaden_app/internal/config"
	"groeipaden_app/internal/handlers"
	"groeipaden_app/internal/locale"
	"groeipaden_app/internal/logging"
	"groeipaden_app/internal/services"
	"groeipaden_app/internal/viewer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, envLoaded, err := config.Load()
	logger := logging.NewOrDefault(cfg.LogLevel, cfg.IsProduction())
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if !envLoaded {
		logger.Info("no .env file found, using system environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	// Load the dataset once; it is read-only from here on
	cat := catalog.Empty()
	src, closeSource, err := catalog.OpenSource(catalog.Options{
		DataPath:    cfg.DataPath,
		DatabaseURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		CacheTTL:    cfg.CatalogCacheTTL,
		Debug:       !cfg.IsProduction(),
	}, logger)
	if err != nil {
		logger.Error("dataset backend unavailable, serving an empty catalog", zap.Error(err))
	} else {
		defer closeSource()
		loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		cat = catalog.Load(loadCtx, src, logger)
		cancel()
	}

	bundle, err := locale.NewBundle(cfg.DefaultLang)
	if err != nil {
		return err
	}

	var consultation *services.Consultation
	if cfg.HRConsultationRRule != "" {
		now := time.Now().In(cfg.HRTimezone)
		anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, cfg.HRTimezone)
		consultation, err = services.NewConsultation(cfg.HRConsultationRRule, anchor, cfg.HRTimezone)
		if err != nil {
			logger.Warn("ignoring HR_CONSULTATION_RRULE", zap.Error(err))
		}
	}

	deps := serverDeps{
		Site: handlers.Site{
			Catalog:      cat,
			Links:        viewer.Links{BaseURL: cfg.AppURL, HREmail: cfg.HREmail},
			Consultation: consultation,
			Location:     cfg.HRTimezone,
			Now:          time.Now,
		},
		Bundle:  bundle,
		Logger:  logger,
		HREmail: cfg.HREmail,
	}

	if cfg.AuthRequired {
		auth := &authDeps{
			Web: handlers.FirebaseWebConfig{
				APIKey:     cfg.FirebaseAPIKey,
				AuthDomain: cfg.FirebaseAuthDomain,
				ProjectID:  cfg.FirebaseProjectID,
			},
			SecureCookie: cfg.IsProduction(),
		}
		authClient, err := services.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Warn("firebase initialization failed, login will not work until valid credentials are provided", zap.Error(err))
		} else {
			auth.Verifier = authClient
		}
		deps.Auth = auth
	}

	e := newServer(deps)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("url", cfg.AppURL))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
