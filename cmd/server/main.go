// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	calendarRouter "github.com/matchday/matchday/internal/calendar/router"
	"github.com/matchday/matchday/internal/config"
	"github.com/matchday/matchday/internal/database/database"
	"github.com/matchday/matchday/internal/database/migrate"
	"github.com/matchday/matchday/internal/health"
	matchRouter "github.com/matchday/matchday/internal/match/router"
	memberRouter "github.com/matchday/matchday/internal/member/router"
	"github.com/matchday/matchday/internal/middleware"
	"github.com/matchday/matchday/internal/readiness"
	statisticsRouter "github.com/matchday/matchday/internal/statistics/router"
	teamsync "github.com/matchday/matchday/internal/sync"
	teamRouter "github.com/matchday/matchday/internal/team/router"
	"github.com/matchday/matchday/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := teamsync.NewHub(zapLogger)
	clock := teamsync.NewClock(hub, zapLogger)
	clock.Start(ctx, cfg.Readiness.TodayRefreshInterval)

	readinessCfg := readiness.Config{WindowDays: cfg.Readiness.WindowDays}

	r := gin.New()
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, zapLogger, hub, cfg.BaseURL)
	memberRouter.RegisterRoutes(r, db, zapLogger, hub)
	matchRouter.RegisterRoutes(r, db, zapLogger, hub, clock, readinessCfg)
	statisticsRouter.RegisterRoutes(r, db, zapLogger, clock, readinessCfg)
	calendarRouter.RegisterRoutes(r, db, zapLogger, hub)

	syncHandler := teamsync.NewHandler(hub, zapLogger)
	syncHandler.RegisterRoutes(r)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Infow("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("graceful shutdown failed", "error", err)
	}
}
