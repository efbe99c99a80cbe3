package usecase

import (
	"context"
	"fmt"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
	"go.uber.org/zap"
)

// PublishUseCase переносит документы карт из источника (обычно каталог data/)
// в удалённое хранилище. Вариант публикуется только если его документы
// проходят ту же проверку, что и при загрузке сервисом.
type PublishUseCase struct {
	source repository.DocumentSource
	sink   repository.DocumentSink
	logger *zap.Logger
}

// NewPublishUseCase - создание нового PublishUseCase
func NewPublishUseCase(source repository.DocumentSource, sink repository.DocumentSink, logger *zap.Logger) *PublishUseCase {
	return &PublishUseCase{
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Publish проверяет и сохраняет документы варианта
func (uc *PublishUseCase) Publish(ctx context.Context, variant domain.Variant) error {
	if _, err := NewDatasetLoader(uc.source, uc.logger).Load(ctx, variant); err != nil {
		return fmt.Errorf("validate %s: %w", variant, err)
	}

	for _, name := range []string{PlacesDocument(variant), CategoriesDocument(variant)} {
		data, err := uc.source.Fetch(ctx, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := uc.sink.Put(ctx, name, data); err != nil {
			return fmt.Errorf("publish %s: %w", name, err)
		}
		uc.logger.Info("Document published",
			zap.String("name", name),
			zap.String("sink", uc.sink.Name()),
			zap.Int("bytes", len(data)))
	}
	return nil
}

// PublishAll публикует оба варианта; ошибка одного не останавливает другой
func (uc *PublishUseCase) PublishAll(ctx context.Context) map[domain.Variant]error {
	failed := make(map[domain.Variant]error)
	for _, v := range []domain.Variant{domain.VariantOutdoor, domain.VariantIndoor} {
		if err := uc.Publish(ctx, v); err != nil {
			uc.logger.Error("Failed to publish map", zap.String("variant", string(v)), zap.Error(err))
			failed[v] = err
		}
	}
	return failed
}
