package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
)

func TestSessionRepository_SaveGet(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	state := &domain.ViewState{
		ID:      uuid.New(),
		Variant: domain.VariantOutdoor,
		Query:   "parque",
		Markers: []domain.MarkerRef{{ID: "m1", PlaceName: "Parque"}},
	}
	require.NoError(t, repo.Save(ctx, state))

	got, err := repo.Get(ctx, domain.VariantOutdoor, state.ID)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	// Изменение полученной копии не влияет на хранилище
	got.Markers[0].PlaceName = "changed"
	again, err := repo.Get(ctx, domain.VariantOutdoor, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Parque", again.Markers[0].PlaceName)

	_, err = repo.Get(ctx, domain.VariantIndoor, state.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.Delete(ctx, domain.VariantOutdoor, state.ID))
	_, err = repo.Get(ctx, domain.VariantOutdoor, state.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Expiry(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, repo.Save(ctx, &domain.ViewState{ID: id, Variant: domain.VariantIndoor}))
	assert.Equal(t, 1, repo.Len())

	now = now.Add(2 * time.Minute)

	_, err := repo.Get(ctx, domain.VariantIndoor, id)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.Equal(t, 0, repo.Len())
}
