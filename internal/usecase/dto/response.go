package dto

import (
	"github.com/google/uuid"
	"github.com/poimap-service/internal/domain"
)

// SessionStateResponse - состояние фильтров сессии
type SessionStateResponse struct {
	Query          string         `json:"query"`
	Category       string         `json:"category"`
	Floor          domain.FloorID `json:"floor,omitempty"`
	SidebarVisible bool           `json:"sidebar_visible"`
}

// RenderResponse - инструкция рендера, которую применяет скрипт страницы
type RenderResponse struct {
	SessionID        uuid.UUID            `json:"session_id"`
	Variant          domain.Variant       `json:"variant"`
	State            SessionStateResponse `json:"state"`
	View             domain.Viewport      `json:"view"`
	Overlay          *domain.Overlay      `json:"overlay,omitempty"`
	Markers          []domain.Marker      `json:"markers"`
	List             []domain.ListEntry   `json:"list"`
	Chips            []domain.Chip        `json:"chips"`
	Floors           []domain.FloorButton `json:"floors,omitempty"`
	OpenPopup        string               `json:"open_popup,omitempty"`
	Navigate         string               `json:"navigate,omitempty"`
	SidebarCollapsed bool                 `json:"sidebar_collapsed"`
}

// MenuResponse - подписи кнопок меню
type MenuResponse struct {
	ToggleTitle string `json:"toggle_title"`
	SwitchTitle string `json:"switch_title"`
	SwitchHref  string `json:"switch_href"`
}

// MapConfigResponse - конфигурация виджета карты варианта
type MapConfigResponse struct {
	Variant         domain.Variant       `json:"variant"`
	CRS             string               `json:"crs"`
	TileURL         string               `json:"tile_url,omitempty"`
	TileAttribution string               `json:"tile_attribution,omitempty"`
	Center          domain.Position      `json:"center"`
	Zoom            float64              `json:"zoom"`
	MinZoom         float64              `json:"min_zoom"`
	MaxZoom         float64              `json:"max_zoom"`
	ZoomSnap        float64              `json:"zoom_snap,omitempty"`
	FocusZoom       float64              `json:"focus_zoom"`
	Bounds          *[2][2]float64       `json:"bounds,omitempty"`
	Floors          []domain.FloorButton `json:"floors,omitempty"`
	Chips           []string             `json:"chips"`
	Palette         *domain.Palette      `json:"palette"`
	Menu            MenuResponse         `json:"menu"`
}

// PlaceItem - место с вычисленными позицией и цветом
type PlaceItem struct {
	domain.Place
	Position      *domain.Position `json:"position"`
	Color         string           `json:"color"`
	DirectionsURL string           `json:"directions_url,omitempty"`
	OnMap         bool             `json:"on_map"`
}

// PlacesResponse - результат фильтрации мест
type PlacesResponse struct {
	Places []PlaceItem `json:"places"`
	Total  int         `json:"total"`
	OnMap  int         `json:"on_map"`
}

// CategoriesResponse - палитра и фишки фильтра
type CategoriesResponse struct {
	Palette *domain.Palette `json:"palette"`
	Chips   []string        `json:"chips"`
}
