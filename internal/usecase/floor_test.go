package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/usecase"
)

func TestNewFloorMachine(t *testing.T) {
	t.Run("starts on center floor", func(t *testing.T) {
		m, err := usecase.NewFloorMachine(indoorData().Dataset)
		require.NoError(t, err)
		assert.Equal(t, domain.FloorID("0"), m.Current())
		assert.Equal(t, "Planta baja", m.CurrentFloor().Name)
	})

	t.Run("unknown center floor falls back to first floor", func(t *testing.T) {
		ds := indoorData().Dataset
		ds.Center.Floor = "9"
		ds.Floors[0], ds.Floors[1] = ds.Floors[1], ds.Floors[0]
		m, err := usecase.NewFloorMachine(ds)
		require.NoError(t, err)
		assert.Equal(t, domain.FloorID("1"), m.Current())
	})

	t.Run("rejects dataset without floors", func(t *testing.T) {
		ds := indoorData().Dataset
		ds.Floors = nil
		_, err := usecase.NewFloorMachine(ds)
		assert.ErrorIs(t, err, domain.ErrIndoorStructure)
	})
}

func TestFloorMachine_Switch(t *testing.T) {
	ds := indoorData().Dataset
	resolver := usecase.IndoorResolver{Height: ds.ImageSize.Height}

	m, err := usecase.NewFloorMachine(ds)
	require.NoError(t, err)

	t.Run("unknown floor is ignored", func(t *testing.T) {
		_, ok := m.Switch("5")
		assert.False(t, ok)
		assert.Equal(t, domain.FloorID("0"), m.Current())
	})

	t.Run("switch to another floor centres on image midpoint", func(t *testing.T) {
		floor, ok := m.Switch("1")
		require.True(t, ok)
		assert.Equal(t, "img/planta1.png", floor.Image)

		view := m.Viewport(resolver, -1)
		assert.Equal(t, domain.Viewport{Center: domain.Position{Lat: 300, Lng: 400}, Zoom: -1, Animate: true}, view)

		overlay := m.Overlay()
		assert.Equal(t, domain.FloorID("1"), overlay.FloorID)
		assert.Equal(t, [2][2]float64{{0, 0}, {600, 800}}, overlay.Bounds)
	})

	t.Run("switch back to center floor centres on center", func(t *testing.T) {
		_, ok := m.Switch("0")
		require.True(t, ok)
		view := m.Viewport(resolver, -1)
		assert.Equal(t, domain.Position{Lat: 500, Lng: 200}, view.Center)
	})

	t.Run("switch to current floor is accepted", func(t *testing.T) {
		_, ok := m.Switch("0")
		assert.True(t, ok)
		assert.Equal(t, domain.FloorID("0"), m.Current())
	})
}

func TestFloorMachine_Buttons(t *testing.T) {
	m, err := usecase.RestoreFloorMachine(indoorData().Dataset, "1")
	require.NoError(t, err)

	assert.Equal(t, []domain.FloorButton{
		{ID: "0", Label: "P0", Title: "Planta baja", Active: false},
		{ID: "1", Label: "P1", Title: "Planta 1", Active: true},
	}, m.Buttons())
}

func TestRestoreFloorMachine_UnknownFloor(t *testing.T) {
	m, err := usecase.RestoreFloorMachine(indoorData().Dataset, "missing")
	require.NoError(t, err)
	assert.Equal(t, domain.FloorID("0"), m.Current())
}
