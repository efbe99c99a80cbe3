package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/usecase"
)

func TestRenderer_Markers(t *testing.T) {
	data := outdoorData()
	r := usecase.NewRenderer(data, usecase.NewResolver(data))

	markers, registry := r.Markers(data.Dataset.Places)

	require.Len(t, markers, 3, "place without position is not drawn")
	require.Len(t, registry, 3)
	assert.Equal(t, []string{"Café Central", "Museo del Prado", "Mirador"},
		[]string{markers[0].PlaceName, markers[1].PlaceName, markers[2].PlaceName})

	assert.Equal(t, "#e17055", markers[0].Color)
	assert.Equal(t, "#0984e3", markers[1].Color)
	assert.Equal(t, "#b2bec3", markers[2].Color, "no category paints as Otros")
	assert.Equal(t, domain.Position{Lat: 40.42, Lng: -3.71}, markers[2].Position)

	assert.Equal(t, "Café Central", markers[0].Popup.Title)
	assert.Equal(t, "Desayunos", markers[0].Popup.Description)
	assert.Contains(t, markers[0].Popup.DirectionsURL, "destination=40.4168,-3.7038")

	for i := range markers {
		assert.NotEmpty(t, markers[i].ID)
		assert.Equal(t, markers[i].ID, registry[i].ID)
		assert.Equal(t, markers[i].PlaceName, registry[i].PlaceName)
	}

	again, _ := r.Markers(data.Dataset.Places)
	assert.NotEqual(t, markers[0].ID, again[0].ID, "handles are regenerated each pass")
}

func TestRenderer_List(t *testing.T) {
	data := outdoorData()
	r := usecase.NewRenderer(data, usecase.NewResolver(data))

	list := r.List(data.Dataset.Places)
	require.Len(t, list, 4, "list keeps places without position")
	assert.Equal(t, "Kiosko perdido", list[3].Name)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Kiosko%20perdido", list[3].DirectionsURL)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&origin=Current+Location&destination=40.42,-3.71", list[2].DirectionsURL)
}

func TestRenderer_IndoorHasNoDirections(t *testing.T) {
	data := indoorData()
	r := usecase.NewRenderer(data, usecase.NewResolver(data))

	markers, _ := r.Markers(data.Dataset.Places)
	require.Len(t, markers, 3)
	assert.Equal(t, domain.Position{Lat: 500, Lng: 200}, markers[0].Position)
	assert.Empty(t, markers[0].Popup.DirectionsURL)
	assert.Equal(t, "#fdcb6e", markers[1].Color)
	assert.Equal(t, "#6c5ce7", usecase.ColorOf("", data.Palette), "palette without defaultColor falls back")

	for _, e := range r.List(data.Dataset.Places) {
		assert.Empty(t, e.DirectionsURL)
	}

	_, ok := r.CenterMarker(data.Dataset.Center)
	assert.False(t, ok)
}

func TestRenderer_CenterMarker(t *testing.T) {
	data := outdoorData()
	r := usecase.NewRenderer(data, usecase.NewResolver(data))

	m, ok := r.CenterMarker(data.Dataset.Center)
	require.True(t, ok)
	assert.Equal(t, usecase.CenterMarkerID, m.ID)
	assert.True(t, m.Center)
	assert.Equal(t, "#2d3436", m.Color)
	assert.Equal(t, domain.Position{Lat: 40.4155, Lng: -3.7074}, m.Position)
	assert.Equal(t, "Plaza Mayor", m.Popup.Title)

	_, ok = r.CenterMarker(nil)
	assert.False(t, ok)
}
