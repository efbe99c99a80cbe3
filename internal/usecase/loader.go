package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
	apperrors "github.com/poimap-service/internal/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PlacesDocument - имя документа с местами варианта
func PlacesDocument(v domain.Variant) string {
	return fmt.Sprintf("places-%s.json", v)
}

// CategoriesDocument - имя документа с палитрой варианта
func CategoriesDocument(v domain.Variant) string {
	return fmt.Sprintf("categories-%s.json", v)
}

// DatasetLoader загружает оба документа варианта карты
type DatasetLoader struct {
	source repository.DocumentSource
	logger *zap.Logger
}

func NewDatasetLoader(source repository.DocumentSource, logger *zap.Logger) *DatasetLoader {
	return &DatasetLoader{
		source: source,
		logger: logger,
	}
}

// Load запрашивает places и categories параллельно и ждёт оба ответа.
// Частичных данных нет: любая ошибка отменяет второй запрос и возвращается целиком.
func (l *DatasetLoader) Load(ctx context.Context, variant domain.Variant) (*domain.MapData, error) {
	start := time.Now()

	var (
		dataset domain.Dataset
		palette domain.Palette
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.fetchJSON(gctx, PlacesDocument(variant), &dataset)
	})
	g.Go(func() error {
		return l.fetchJSON(gctx, CategoriesDocument(variant), &palette)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if variant == domain.VariantIndoor {
		if err := dataset.ValidateIndoor(); err != nil {
			l.logger.Error("Indoor map data has unexpected structure",
				zap.String("document", PlacesDocument(variant)),
				zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDataset, err)
		}
	}

	l.logger.Info("Map data loaded",
		zap.String("variant", string(variant)),
		zap.String("source", l.source.Name()),
		zap.Int("places", len(dataset.Places)),
		zap.Int("categories", len(palette.Categories)),
		zap.Int("floors", len(dataset.Floors)),
		zap.Duration("took", time.Since(start)),
	)

	return &domain.MapData{
		Variant: variant,
		Dataset: &dataset,
		Palette: &palette,
	}, nil
}

func (l *DatasetLoader) fetchJSON(ctx context.Context, name string, dst interface{}) error {
	data, err := l.source.Fetch(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrSourceError, name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", apperrors.ErrInvalidDataset, name, err)
	}
	return nil
}
