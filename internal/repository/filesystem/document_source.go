package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poimap-service/internal/domain/repository"
	"go.uber.org/zap"
)

type documentSource struct {
	dir    string
	logger *zap.Logger
}

// NewDocumentSource - документы карт из каталога на диске
func NewDocumentSource(dir string, logger *zap.Logger) repository.DocumentSource {
	return &documentSource{
		dir:    dir,
		logger: logger,
	}
}

func (s *documentSource) Name() string {
	return "file"
}

func (s *documentSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Имя документа не должно выводить за пределы каталога
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid document name %q", name)
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("Failed to read map document", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}

	s.logger.Debug("Map document read", zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}
