package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/poimap-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ErrDocumentNotFound - в таблице map_documents нет документа с таким именем
var ErrDocumentNotFound = errors.New("map document not found")

// MapDocument - строка таблицы map_documents
type MapDocument struct {
	Name      string    `db:"name"`
	Content   []byte    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DocumentRepository хранит JSON-документы карт в jsonb
type DocumentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

var (
	_ repository.DocumentSource = (*DocumentRepository)(nil)
	_ repository.DocumentSink   = (*DocumentRepository)(nil)
)

func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *DocumentRepository) Name() string {
	return "postgres"
}

// Fetch возвращает content документа
func (r *DocumentRepository) Fetch(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT content FROM map_documents WHERE name = $1`

	var content []byte
	err := r.db.QueryRowxContext(ctx, query, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	if err != nil {
		r.logger.Error("Failed to fetch map document", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("fetch document %s: %w", name, err)
	}

	return content, nil
}

// Put сохраняет документ (upsert); content должен быть валидным JSON
func (r *DocumentRepository) Put(ctx context.Context, name string, content []byte) error {
	query := `
		INSERT INTO map_documents (name, content, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (name) DO UPDATE
		SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, name, string(content)); err != nil {
		r.logger.Error("Failed to upsert map document", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("upsert document %s: %w", name, err)
	}

	r.logger.Debug("Map document stored", zap.String("name", name), zap.Int("bytes", len(content)))
	return nil
}

// List возвращает все документы, отсортированные по имени
func (r *DocumentRepository) List(ctx context.Context) ([]MapDocument, error) {
	query := `SELECT name, content, updated_at FROM map_documents ORDER BY name`

	var docs []MapDocument
	if err := r.db.SelectContext(ctx, &docs, query); err != nil {
		r.logger.Error("Failed to list map documents", zap.Error(err))
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}
