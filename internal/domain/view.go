package domain

import "github.com/google/uuid"

// CategoryAll - фишка фильтра "все категории"
const CategoryAll = "Todos"

// Viewport - центр и zoom, которые должен выставить виджет
type Viewport struct {
	Center  Position `json:"center"`
	Zoom    float64  `json:"zoom"`
	Animate bool     `json:"animate"`
}

// ViewState - состояние интерфейса одного зрителя (сессии)
type ViewState struct {
	ID             uuid.UUID `json:"id"`
	Variant        Variant   `json:"variant"`
	Query          string    `json:"query"`
	Category       string    `json:"category"`
	FloorID        FloorID   `json:"floor_id,omitempty"`
	SidebarVisible bool      `json:"sidebar_visible"`
	View           Viewport  `json:"view"`
	// Markers - связь маркер -> место из последнего прохода рендера
	Markers []MarkerRef `json:"markers,omitempty"`
}

// MarkerRef - handle маркера и имя места, для которого он нарисован
type MarkerRef struct {
	ID        string   `json:"id"`
	PlaceName string   `json:"place_name"`
	Position  Position `json:"position"`
}

// MarkerFor возвращает первый маркер, нарисованный для места
func (s *ViewState) MarkerFor(placeName string) (MarkerRef, bool) {
	for _, m := range s.Markers {
		if m.PlaceName == placeName {
			return m, true
		}
	}
	return MarkerRef{}, false
}

// Marker - маркер на карте
type Marker struct {
	ID        string   `json:"id"`
	PlaceName string   `json:"place_name"`
	Position  Position `json:"position"`
	Color     string   `json:"color"`
	Center    bool     `json:"center,omitempty"`
	Popup     Popup    `json:"popup"`
}

// Popup - содержимое всплывающего окна маркера
type Popup struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	DirectionsURL string `json:"directions_url,omitempty"`
}

// ListEntry - строка бокового списка
type ListEntry struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Floor         FloorID `json:"floor,omitempty"`
	DirectionsURL string  `json:"directions_url,omitempty"`
}

// Overlay - подложка текущего этажа
type Overlay struct {
	FloorID FloorID       `json:"floor_id"`
	Image   string        `json:"image"`
	Bounds  [2][2]float64 `json:"bounds"`
}

// Chip - кнопка фильтра по категории
type Chip struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// FloorButton - кнопка переключения этажа
type FloorButton struct {
	ID     FloorID `json:"id"`
	Label  string  `json:"label"`
	Title  string  `json:"title"`
	Active bool    `json:"active"`
}
