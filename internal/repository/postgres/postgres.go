package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/poimap-service/internal/config"
	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// DB - пул соединений к хранилищу документов карт
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	conn, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	db := &DB{DB: conn, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("document store unreachable at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("Document store connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", cfg.MaxConns),
	)

	return db, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing document store connection")
	return db.DB.Close()
}

// Health проверяет соединение и наличие таблицы map_documents
func (db *DB) Health(ctx context.Context) error {
	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT to_regclass('map_documents') IS NOT NULL`); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("table map_documents is missing, apply migrations first")
	}
	return nil
}

// NewDBForTest оборачивает готовое соединение (для интеграционных тестов)
func NewDBForTest(conn *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: conn, logger: logger}
}
