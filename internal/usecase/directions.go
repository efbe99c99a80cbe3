package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/poimap-service/internal/domain"
)

const (
	directionsURLFormat = "https://www.google.com/maps/dir/?api=1&origin=Current+Location&destination=%s,%s"
	searchURLFormat     = "https://www.google.com/maps/search/?api=1&query=%s"
)

// DirectionsURL - ссылка "¿Como llegar?": маршрут до позиции, иначе исходный googleUrl,
// иначе поиск по имени
func DirectionsURL(p *domain.Place, pos *domain.Position) string {
	if pos != nil {
		return fmt.Sprintf(directionsURLFormat, formatCoord(pos.Lat), formatCoord(pos.Lng))
	}
	if p.GoogleURL != nil && *p.GoogleURL != "" {
		return *p.GoogleURL
	}
	return fmt.Sprintf(searchURLFormat, encodeURIComponent(p.Name))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// символы, которые encodeURIComponent в браузере оставляет как есть
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent кодирует как одноимённая функция браузера
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
