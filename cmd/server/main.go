package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/config"
	"github.com/denizbarcak/planvia-partner-ui/internal/api/handler"
	"github.com/denizbarcak/planvia-partner-ui/internal/api/router"
	"github.com/denizbarcak/planvia-partner-ui/internal/model"
	"github.com/denizbarcak/planvia-partner-ui/internal/repository"
	"github.com/denizbarcak/planvia-partner-ui/internal/service"
	"github.com/denizbarcak/planvia-partner-ui/internal/session"
	"github.com/denizbarcak/planvia-partner-ui/internal/upstream"
	"github.com/denizbarcak/planvia-partner-ui/pkg/database"
	applogger "github.com/denizbarcak/planvia-partner-ui/pkg/logger"
)

func main() {
	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. initialize logging
	logger, err := applogger.New(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting partner UI server",
		zap.Int("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. session store (redis, with in-memory fallback so the server
	// still comes up without one; sessions then die with the process)
	var sessions session.Store
	redisStore, err := session.NewRedisStore(&cfg.Redis, cfg.Session.TTL, logger)
	if err != nil {
		logger.Warn("redis unavailable, sessions will not survive a restart", zap.Error(err))
		sessions = session.NewMemoryStore()
	} else {
		sessions = redisStore
		defer redisStore.Close()
	}

	// 4. guest-notes database
	db, err := database.NewDB(&cfg.Notes, logger)
	if err != nil {
		logger.Fatal("opening notes database failed", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.GuestNote{}); err != nil {
		logger.Fatal("migrating notes database failed", zap.Error(err))
	}

	// 5. upstream reservation API client
	api := upstream.New(&cfg.Upstream, logger)

	// 6. dependency injection: Repository -> Service -> Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(api, sessions, repo, logger)
	h := handler.NewHandler(svc, sessions, &cfg.Session)

	// 7. router
	engine := router.Setup(cfg, h, sessions, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 9. wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
