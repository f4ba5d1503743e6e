package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/product_review_service/internal/config"
	"github.com/mishasvintus/product_review_service/internal/handler"
	"github.com/mishasvintus/product_review_service/internal/logger"
	"github.com/mishasvintus/product_review_service/internal/queue"
	"github.com/mishasvintus/product_review_service/internal/repository"
	"github.com/mishasvintus/product_review_service/internal/router"
	"github.com/mishasvintus/product_review_service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Env, cfg.Log.Level)
	if cfg.Log.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	var notifier service.Notifier = service.NewLogNotifier(log.With(slog.String("component", "notifier")))
	if cfg.Notify.RedisURL != "" {
		client, err := queue.Connect(context.Background(), cfg.Notify.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		redisNotifier := queue.NewRedisNotifier(client, cfg.Notify.RedisStream, log.With(slog.String("component", "notifier")))
		defer func() { _ = redisNotifier.Close() }()
		notifier = redisNotifier
		log.Info("redis connected", slog.String("stream", cfg.Notify.RedisStream))
	}

	documentService := service.NewDocumentService(
		db,
		service.NewReviewWorkflowEngine(),
		service.NewReviewerAssigner(),
		notifier,
		log.With(slog.String("component", "documents")),
	)
	userService := service.NewUserService(db)
	versionService := service.NewVersionService(db, log.With(slog.String("component", "versions")))
	statsService := service.NewStatsService(db)

	r := router.SetupRoutes(
		log,
		handler.NewUserHandler(userService),
		handler.NewDocumentHandler(documentService),
		handler.NewVersionHandler(versionService),
		handler.NewStatsHandler(statsService),
	)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server exited")
}
