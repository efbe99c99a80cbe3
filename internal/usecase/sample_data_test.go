package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/repository/filesystem"
	"github.com/poimap-service/internal/repository/memory"
	"github.com/poimap-service/internal/usecase"
	"github.com/poimap-service/internal/usecase/dto"
)

func TestSampleData_LoadsBothVariants(t *testing.T) {
	logger := zap.NewNop()
	loader := usecase.NewDatasetLoader(filesystem.NewDocumentSource("../../data", logger), logger)

	uc := usecase.NewMapUseCase(memory.NewSessionRepository(0), testMapSettings(), logger)
	require.Equal(t, 2, uc.LoadMaps(context.Background(), loader))

	outdoor, err := uc.ListPlaces(domain.VariantOutdoor, dto.PlacesQuery{})
	require.NoError(t, err)
	assert.Equal(t, 7, outdoor.Total)
	assert.Equal(t, 6, outdoor.OnMap, "only the short link stays off the map")

	cfg, err := uc.GetMapConfig(domain.VariantIndoor)
	require.NoError(t, err)
	require.Len(t, cfg.Floors, 3)
	assert.Equal(t, domain.FloorID("2"), cfg.Floors[2].ID)
	assert.Equal(t, "Planta 2", cfg.Floors[2].Title)
}
