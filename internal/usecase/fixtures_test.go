package usecase_test

import (
	"github.com/poimap-service/internal/domain"
)

func f64(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func outdoorData() *domain.MapData {
	return &domain.MapData{
		Variant: domain.VariantOutdoor,
		Dataset: &domain.Dataset{
			Center: &domain.Center{
				Place: domain.Place{Name: "Plaza Mayor", Description: "Punto de encuentro", Lat: f64(40.4155), Lng: f64(-3.7074)},
				Zoom:  f64(16),
			},
			Places: []domain.Place{
				{Name: "Café Central", Description: "Desayunos", Category: "Comida", Coordinates: []float64{40.4168, -3.7038}},
				{Name: "Museo del Prado", Description: "Arte clásico", Category: "Cultura", Lat: f64(40.4138), Lng: f64(-3.6921)},
				{Name: "Mirador", Description: "Vistas", GoogleURL: str("https://www.google.com/maps/place/Mirador/@40.42,-3.71,17z")},
				{Name: "Kiosko perdido", Description: "Sin ubicación", Category: "Comida"},
			},
		},
		Palette: &domain.Palette{
			Categories: []domain.Category{
				{Name: "Comida", Color: "#e17055"},
				{Name: "Cultura", Color: "#0984e3"},
				{Name: "Otros", Color: "#b2bec3"},
			},
			DefaultColor: "#2d3436",
		},
	}
}

func indoorData() *domain.MapData {
	return &domain.MapData{
		Variant: domain.VariantIndoor,
		Dataset: &domain.Dataset{
			Center: &domain.Center{
				Place: domain.Place{Name: "Recepción", Floor: "0", Coordinates: []float64{200, 100}},
				Zoom:  f64(-1),
			},
			Places: []domain.Place{
				{Name: "Recepción", Category: "Servicios", Floor: "0", Coordinates: []float64{200, 100}},
				{Name: "Aula 101", Category: "Aulas", Floor: "1", Coordinates: []float64{100, 50}},
				{Name: "Biblioteca", Category: "Servicios", Floor: "1", Coordinates: []float64{700, 500}},
				{Name: "Almacén", Floor: "0"},
			},
			Floors: []domain.Floor{
				{ID: "0", Name: "Planta baja", Image: "img/planta0.png"},
				{ID: "1", Image: "img/planta1.png"},
			},
			ImageSize: &domain.ImageSize{Width: 800, Height: 600},
		},
		Palette: &domain.Palette{
			Categories: []domain.Category{
				{Name: "Servicios", Color: "#00b894"},
				{Name: "Aulas", Color: "#fdcb6e"},
			},
		},
	}
}
