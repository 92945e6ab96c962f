package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/seat_reservation/internal/adapter/handler"
	"github.com/srgjo27/seat_reservation/internal/adapter/messaging/rabbitmq"
	"github.com/srgjo27/seat_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/seat_reservation/internal/config"
	"github.com/srgjo27/seat_reservation/internal/core/ports"
	"github.com/srgjo27/seat_reservation/internal/core/services"
	"github.com/srgjo27/seat_reservation/internal/lib/logger/sl"
	"github.com/srgjo27/seat_reservation/internal/platform/cache"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := setupLogger(cfg.Env)
	logger.Info("starting seat reservation service",
		slog.String("env", cfg.Env),
		slog.String("venue", cfg.Registry.Venue),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient, err = cache.NewRedisClient(ctx, cache.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to redis", sl.Err(err))
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("redis connected")
	}

	var publisher ports.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName)
		if err != nil {
			logger.Error("failed to init rabbitmq", sl.Err(err))
			os.Exit(1)
		}
		defer mq.Close()
		publisher = mq
	}

	repo := memory.NewReservationRepository(memory.WithCapacity(cfg.Registry.Capacity))

	reservationService := services.NewReservationService(repo, redisClient, publisher, logger,
		services.WithVenue(cfg.Registry.Venue),
		services.WithSeatMapTTL(cfg.Redis.SeatMapTTL),
		services.WithCompaction(cfg.Registry.CompactionInterval, cfg.Registry.HistoryRetention),
	)

	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		reservationService.RunHistoryCompaction(ctx)
	}()

	reservationHandler := handler.NewReservationHandler(reservationService, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", reservationHandler.Routes())

	server := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", slog.String("addr", cfg.HTTPServer.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", sl.Err(err))
	}

	workers.Wait()

	logger.Info("server exiting")
}

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return logger
}
