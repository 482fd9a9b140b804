package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorestaurant/agg-svc/internal/service"
	"gorestaurant/agg-svc/internal/storage"
	"gorestaurant/config"
)

func main() {
	settings, err := config.Load(nil, os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger("agg-svc", settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rdb := config.MustInitRedis(settings, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(settings, "agg-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(rdb), logger).Start(ctx)
}
