package usecase

import (
	"math"
	"regexp"
	"strconv"

	"github.com/poimap-service/internal/domain"
)

var (
	// .../@41.3851,2.1734,17z
	googleAtPattern = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
	// ...?q=41.3851,2.1734
	googleQueryPattern = regexp.MustCompile(`[?&]q=(-?\d+\.\d+),(-?\d+\.\d+)`)
)

// Resolver вычисляет позицию места на карте
type Resolver interface {
	// Resolve возвращает позицию или false, если место нельзя нанести на карту
	Resolve(p *domain.Place) (domain.Position, bool)
}

// OutdoorResolver - координаты внешней карты: coordinates -> lat/lng -> googleUrl
type OutdoorResolver struct{}

func (OutdoorResolver) Resolve(p *domain.Place) (domain.Position, bool) {
	if p == nil {
		return domain.Position{}, false
	}
	if len(p.Coordinates) >= 2 {
		return domain.Position{Lat: p.Coordinates[0], Lng: p.Coordinates[1]}, true
	}
	if p.Lat != nil && p.Lng != nil {
		return domain.Position{Lat: *p.Lat, Lng: *p.Lng}, true
	}
	if p.GoogleURL != nil {
		return ParseGoogleURL(*p.GoogleURL)
	}
	return domain.Position{}, false
}

// IndoorResolver - пиксели подложки; ось Y изображения направлена вниз,
// у виджета вверх, поэтому y отражается относительно высоты изображения.
type IndoorResolver struct {
	Height float64
}

func (r IndoorResolver) Resolve(p *domain.Place) (domain.Position, bool) {
	if p == nil || len(p.Coordinates) < 2 {
		return domain.Position{}, false
	}
	x, y := p.Coordinates[0], p.Coordinates[1]
	return domain.Position{Lat: r.Height - y, Lng: x}, true
}

// NewResolver выбирает резолвер по варианту карты
func NewResolver(data *domain.MapData) Resolver {
	if data.Variant == domain.VariantIndoor {
		var h float64
		if data.Dataset != nil && data.Dataset.ImageSize != nil {
			h = data.Dataset.ImageSize.Height
		}
		return IndoorResolver{Height: h}
	}
	return OutdoorResolver{}
}

// ParseGoogleURL извлекает координаты из ссылки Google Maps: сначала @lat,lng, затем q=lat,lng.
// Частичное совпадение позицию не даёт.
func ParseGoogleURL(raw string) (domain.Position, bool) {
	m := googleAtPattern.FindStringSubmatch(raw)
	if m == nil {
		m = googleQueryPattern.FindStringSubmatch(raw)
	}
	if m == nil {
		return domain.Position{}, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(lat) {
		return domain.Position{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil || math.IsNaN(lng) {
		return domain.Position{}, false
	}

	return domain.Position{Lat: lat, Lng: lng}, true
}
