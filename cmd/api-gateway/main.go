package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/bet-tracker/internal/api/http/handlers"
	"github.com/ozzus/bet-tracker/internal/app"
	"github.com/ozzus/bet-tracker/internal/config"
	"github.com/ozzus/bet-tracker/internal/httpapp"
	"github.com/ozzus/bet-tracker/internal/infrastructures/db/tracing"
	"github.com/ozzus/bet-tracker/internal/logging"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := logging.Setup(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.InitTracer(tracing.Options{
		ServiceName: "bet-tracker-gateway",
		Environment: cfg.Env,
		Collector:   cfg.Jaeger,
	})
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Fatal("failed to build app", zap.Error(err))
	}
	defer application.Close()

	addr := cfg.HTTP.Address()
	log.Info("api-gateway starting", zap.String("http_addr", addr), zap.String("env", cfg.Env))

	router := handlers.NewRouter(
		log,
		handlers.NewDashboardHandler(log, application.Service, cfg.HTTP.RequestTimeout),
		handlers.NewCatalogHandler(application.Catalog),
		handlers.NewSuggestionsHandler(log, application.Service, cfg.HTTP.RequestTimeout),
	)
	server := httpapp.New(log, addr, router, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}
