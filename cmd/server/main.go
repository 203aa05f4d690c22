package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/mamadbah2/lawncare/internal/config"
	"github.com/mamadbah2/lawncare/internal/scheduler"
	"github.com/mamadbah2/lawncare/internal/server/handlers"
	"github.com/mamadbah2/lawncare/internal/server/middleware"
	"github.com/mamadbah2/lawncare/internal/server/router"
	digestsvc "github.com/mamadbah2/lawncare/internal/service/digest"
	plannersvc "github.com/mamadbah2/lawncare/internal/service/planner"
	"github.com/mamadbah2/lawncare/pkg/clients/webhook"
	"github.com/mamadbah2/lawncare/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	plannerSvc := plannersvc.NewService(cfg.Planner, baseLogger.Named("svc.planner"))

	notifier := webhook.NewNotifier(cfg.Digest, baseLogger.Named("clients.webhook"))
	if cfg.Digest.WebhookURL == "" {
		baseLogger.Warn("digest webhook url missing, digests will only be logged")
	}
	digestSvc := digestsvc.NewService(plannerSvc, notifier, cfg.Digest.Regions, baseLogger.Named("svc.digest"))

	timingHandler := handlers.NewTimingHandler(plannerSvc, baseLogger.Named("handlers.timing"))
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	engine := router.New(timingHandler, limiter, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Digest, digestSvc, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.Stringer("default_region", plannerSvc.DefaultRegion()))
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
