package main

// @title POI Map Service API
// @version 1.0.0
// @description Сервис карт точек интереса: внешняя карта (externo) на тайлах и внутренняя
// @description карта (interno) по этажам на подложке-изображении.
// @description
// @description Основные возможности:
// @description - Загрузка документов places-*.json и categories-*.json из файлов, HTTP, S3 или PostgreSQL
// @description - Фильтрация мест по тексту и категории, позиции и цвета маркеров
// @description - Сессии просмотра с событиями интерфейса и инструкциями рендера

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/poimap-service/docs/swagger"
	"github.com/poimap-service/internal/config"
	httpDelivery "github.com/poimap-service/internal/delivery/http"
	"github.com/poimap-service/internal/delivery/http/handler"
	"github.com/poimap-service/internal/domain/repository"
	"github.com/poimap-service/internal/infrastructure/httpdocs"
	"github.com/poimap-service/internal/infrastructure/objectstore"
	"github.com/poimap-service/internal/pkg/logger"
	"github.com/poimap-service/internal/repository/cache"
	"github.com/poimap-service/internal/repository/filesystem"
	"github.com/poimap-service/internal/repository/memory"
	"github.com/poimap-service/internal/repository/postgres"
	"github.com/poimap-service/internal/usecase"
	"github.com/poimap-service/internal/worker"
	"github.com/poimap-service/internal/worker/reload"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting POI Map Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Data.Source),
		zap.String("session_store", cfg.Session.Store),
	)

	var closers []func() error

	// 3. Document source
	source, closeSource, err := newDocumentSource(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize document source", zap.Error(err))
	}
	if closeSource != nil {
		closers = append(closers, closeSource)
	}

	// 4. Session store
	var sessions repository.SessionRepository
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		closers = append(closers, redisClient.Close)

		sessions = cache.NewSessionRepository(redisClient, cfg.Session.TTL)
		log.Info("Redis session store connected")
	default:
		sessions = memory.NewSessionRepository(cfg.Session.TTL)
		log.Info("In-memory session store initialized")
	}

	// 5. Initialize Use Cases and load map documents
	mapUC := usecase.NewMapUseCase(sessions, cfg.Map, log)

	loader := usecase.NewDatasetLoader(source, log)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Data.LoadTimeout)
	loaded := mapUC.LoadMaps(loadCtx, loader)
	cancelLoad()

	if loaded == 0 {
		log.Warn("No map variant could be loaded; map endpoints will answer 503")
	} else {
		log.Info("Maps loaded", zap.Int("variants", loaded))
	}

	// 6. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workerManager := worker.NewWorkerManager(log)
	if cfg.Data.ReloadInterval > 0 {
		workerManager.Register(reload.NewMapReloadWorker(mapUC, loader, cfg.Data.ReloadInterval, cfg.Data.LoadTimeout, log))
	}
	if workerManager.Len() > 0 {
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 7. Initialize HTTP Handlers
	mapHandler := handler.NewMapHandler(mapUC, log)
	sessionHandler := handler.NewSessionHandler(mapUC, log)
	pageHandler, err := handler.NewPageHandler(httpDelivery.APIPrefix)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, mapHandler, sessionHandler, pageHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workerManager.Len() > 0 {
		stopWorkers()
		if err := workerManager.Stop(ctx); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			log.Error("Failed to close connection", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}

// newDocumentSource выбирает источник документов по DATA_SOURCE
func newDocumentSource(cfg *config.Config, log *zap.Logger) (repository.DocumentSource, func() error, error) {
	switch cfg.Data.Source {
	case config.DataSourceHTTP:
		log.Info("Reading map documents over HTTP", zap.String("base_url", cfg.Data.BaseURL))
		return httpdocs.NewDocumentClient(&cfg.Data, log), nil, nil

	case config.DataSourceS3:
		client, err := objectstore.NewClient(&cfg.S3, log)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			return nil, nil, err
		}
		log.Info("Reading map documents from S3", zap.String("bucket", cfg.S3.Bucket))
		return client.DocumentSource(), nil, nil

	case config.DataSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Reading map documents from PostgreSQL")
		return postgres.NewDocumentRepository(db), db.Close, nil

	default:
		log.Info("Reading map documents from disk", zap.String("dir", cfg.Data.Dir))
		return filesystem.NewDocumentSource(cfg.Data.Dir, log), nil, nil
	}
}
