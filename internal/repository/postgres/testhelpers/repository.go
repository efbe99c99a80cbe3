package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/poimap-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDocumentRepositoryForTest creates a document repository over the test database
func NewDocumentRepositoryForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DocumentRepository {
	return postgres.NewDocumentRepository(postgres.NewDBForTest(db, logger))
}
