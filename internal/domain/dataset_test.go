package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FloorID
		wantErr  bool
	}{
		{name: "string id", input: `"p1"`, expected: "p1"},
		{name: "integer id", input: `0`, expected: "0"},
		{name: "negative id", input: `-1`, expected: "-1"},
		{name: "null", input: `null`, expected: ""},
		{name: "object is rejected", input: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FloorID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestDataset_Decode(t *testing.T) {
	raw := `{
		"center": {"name": "Hall", "coordinates": [10, 20], "zoom": 1, "floor": 2},
		"places": [
			{"name": "A", "category": "Food", "coordinates": [1, 2], "floor": 2},
			{"name": "B", "googleUrl": "https://maps.google.com/@5.5,6.6"}
		],
		"floors": [{"id": 2, "name": "Planta baja", "image": "img/p0.png"}],
		"imageSize": {"width": 800, "height": 600}
	}`

	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(raw), &ds))

	require.NotNil(t, ds.Center)
	assert.Equal(t, "Hall", ds.Center.Name)
	assert.Equal(t, FloorID("2"), ds.Center.Floor)
	assert.Equal(t, 1.0, ds.Center.ZoomOr(0))
	assert.Len(t, ds.Places, 2)
	require.NotNil(t, ds.Places[1].GoogleURL)

	floor, ok := ds.FloorByID("2")
	assert.True(t, ok)
	assert.Equal(t, "img/p0.png", floor.Image)

	_, ok = ds.FloorByID("9")
	assert.False(t, ok)

	assert.NoError(t, ds.ValidateIndoor())
	assert.Equal(t, [2][2]float64{{0, 0}, {600, 800}}, ds.ImageSize.Bounds())
	assert.Equal(t, Position{Lat: 300, Lng: 400}, ds.ImageSize.Midpoint())
}

func TestDataset_ValidateIndoor(t *testing.T) {
	size := &ImageSize{Width: 10, Height: 10}

	assert.ErrorIs(t, (*Dataset)(nil).ValidateIndoor(), ErrIndoorStructure)
	assert.ErrorIs(t, (&Dataset{Floors: []Floor{{ID: "0"}}}).ValidateIndoor(), ErrIndoorStructure)
	assert.ErrorIs(t, (&Dataset{ImageSize: size}).ValidateIndoor(), ErrIndoorStructure)
	assert.NoError(t, (&Dataset{ImageSize: size, Floors: []Floor{{ID: "0"}}}).ValidateIndoor())
}

func TestCenter_ZoomOr(t *testing.T) {
	var nilCenter *Center
	assert.Equal(t, 15.0, nilCenter.ZoomOr(15))
	assert.Equal(t, 15.0, (&Center{}).ZoomOr(15))
}

func TestVariant(t *testing.T) {
	assert.True(t, VariantOutdoor.Valid())
	assert.True(t, VariantIndoor.Valid())
	assert.False(t, Variant("terraza").Valid())

	assert.Equal(t, VariantIndoor, VariantOutdoor.Other())
	assert.Equal(t, "indexi.html", VariantIndoor.Page())
	assert.Equal(t, "index.html", VariantOutdoor.Page())
}

func TestViewState_MarkerFor(t *testing.T) {
	s := ViewState{Markers: []MarkerRef{
		{ID: "m1", PlaceName: "A"},
		{ID: "m2", PlaceName: "B"},
	}}

	m, ok := s.MarkerFor("B")
	assert.True(t, ok)
	assert.Equal(t, "m2", m.ID)

	_, ok = s.MarkerFor("C")
	assert.False(t, ok)
}
