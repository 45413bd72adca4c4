package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"file-manager-api/config"
	"file-manager-api/internal/infrastructure/blob"
	"file-manager-api/internal/infrastructure/db/postgres"
	fileDB "file-manager-api/internal/infrastructure/db/postgres/file"
	userDB "file-manager-api/internal/infrastructure/db/postgres/user"
	"file-manager-api/internal/infrastructure/metrics"
	"file-manager-api/pkg/thumbworker"
)

// Standalone queue consumer: runs independently of the API process and is
// safe to scale out, since jobs are idempotent under redelivery.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	if err = godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}
	cfg := config.Load()

	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	blobStore, err := blob.New(logger, cfg.Storage.Root)
	if err != nil {
		logger.Fatal("failed to init blob storage", zap.Error(err))
	}

	handler := thumbworker.NewHandler(
		logger,
		fileDB.NewRepository(dbPool),
		userDB.NewRepository(dbPool),
		blobStore,
		metrics.NewCounter(),
	)

	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	consumer := thumbworker.New(cfg.MQ, logger, handler)
	if err = consumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = consumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	consumer.DeliveryWorker(ctx)
}
