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

	"gorestaurant/config"
	httpapi "gorestaurant/menu-svc/internal/api/http"
	"gorestaurant/menu-svc/internal/service"
	"gorestaurant/menu-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load(nil, os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger("menu-svc", settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db := config.MustInitPostgres(settings, logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis(settings, logger)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(settings)
	defer kafkaWriter.Close()

	handler := httpapi.NewHandler(
		service.NewFoodService(repo),
		service.NewFavoriteService(storage.NewRedisFavorites(rdb)),
		service.NewOrderService(
			repo,
			service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL},
			storage.NewKafkaPublisher(kafkaWriter),
			logger,
		),
		logger,
	)

	server := &http.Server{
		Addr:              settings.HTTPAddr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("menu service starting", zap.String("addr", settings.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
