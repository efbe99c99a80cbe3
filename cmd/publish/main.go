package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/poimap-service/internal/config"
	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
	"github.com/poimap-service/internal/infrastructure/objectstore"
	"github.com/poimap-service/internal/pkg/logger"
	"github.com/poimap-service/internal/repository/filesystem"
	"github.com/poimap-service/internal/repository/postgres"
	"github.com/poimap-service/internal/usecase"
	"go.uber.org/zap"
)

// publish копирует places-*.json и categories-*.json из DATA_DIR в PostgreSQL или S3,
// откуда их читает сервис с DATA_SOURCE=postgres|s3.
func main() {
	target := flag.String("target", "", "postgres or s3 (default: DATA_SOURCE)")
	variant := flag.String("variant", "", "externo or interno (default: both)")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *target == "" {
		*target = cfg.Data.Source
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Data.LoadTimeout)
	defer cancel()

	// 3. Connect to target store
	var sink repository.DocumentSink
	switch *target {
	case config.DataSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		sink = postgres.NewDocumentRepository(db)

	case config.DataSourceS3:
		client, err := objectstore.NewClient(&cfg.S3, log)
		if err != nil {
			log.Fatal("Failed to create S3 client", zap.Error(err))
		}
		healthCtx, healthCancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Health(healthCtx)
		healthCancel()
		if err != nil {
			log.Fatal("S3 health check failed", zap.Error(err))
		}
		sink = client

	default:
		log.Fatal("Unsupported publish target", zap.String("target", *target))
	}

	// 4. Publish
	publishUC := usecase.NewPublishUseCase(filesystem.NewDocumentSource(cfg.Data.Dir, log), sink, log)

	if *variant != "" {
		v := domain.Variant(*variant)
		if !v.Valid() {
			log.Fatal("Unknown map variant", zap.String("variant", *variant))
		}
		if err := publishUC.Publish(ctx, v); err != nil {
			log.Fatal("Publish failed", zap.Error(err))
		}
		log.Info("Publish finished", zap.String("variant", *variant))
		return
	}

	if failed := publishUC.PublishAll(ctx); len(failed) > 0 {
		log.Error("Publish finished with errors", zap.Int("failed", len(failed)))
		os.Exit(1)
	}
	log.Info("Publish finished")
}
