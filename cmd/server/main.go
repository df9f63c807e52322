package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"c4inventario/internal/config"
	"c4inventario/internal/scheduler"
	"c4inventario/internal/server/handlers"
	"c4inventario/internal/server/router"
	"c4inventario/internal/session"
	"c4inventario/pkg/clients/backend"
	"c4inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := backend.NewClient(cfg.Backend)
	store := session.NewStore(cfg.Session)

	h := router.Handlers{
		Auth:      handlers.NewAuthHandler(apiClient, store, baseLogger.Named("handlers.auth")),
		Dashboard: handlers.NewDashboardHandler(apiClient, baseLogger.Named("handlers.dashboard")),
		Products:  handlers.NewProductHandler(apiClient, baseLogger.Named("handlers.products")),
		Reports:   handlers.NewReportHandler(apiClient, baseLogger.Named("handlers.reports")),
		Settings:  handlers.NewSettingsHandler(apiClient, baseLogger.Named("handlers.settings")),
	}

	engine := router.New(cfg.Server, h, store, baseLogger.Named("router"))

	// The snapshot job only runs when a reporting account is configured.
	if cfg.Reporting.Username != "" {
		sched := scheduler.NewScheduler(cfg.Reporting, apiClient, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Info("no reporting account configured, snapshot job disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
