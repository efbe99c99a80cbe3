package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Variant - вариант карты
type Variant string

const (
	VariantOutdoor Variant = "externo"
	VariantIndoor  Variant = "interno"
)

// Valid проверяет, что вариант известен
func (v Variant) Valid() bool {
	return v == VariantOutdoor || v == VariantIndoor
}

// Other возвращает парный вариант (для кнопки переключения карты)
func (v Variant) Other() Variant {
	if v == VariantIndoor {
		return VariantOutdoor
	}
	return VariantIndoor
}

// Page возвращает страницу, на которой рисуется вариант
func (v Variant) Page() string {
	if v == VariantIndoor {
		return "indexi.html"
	}
	return "index.html"
}

// Position - точка на карте в логических координатах виджета.
// Для внешней карты это широта/долгота, для внутренней - пиксели изображения
// с уже инвертированной осью Y.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FloorID - идентификатор этажа; в JSON бывает строкой или числом
type FloorID string

// UnmarshalJSON принимает и строки, и числа
func (id *FloorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FloorID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("floor id must be string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("floor id must be string or number: %w", err)
	}
	*id = FloorID(n.String())
	return nil
}

// Place - точка интереса из places-*.json
type Place struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Floor       FloorID   `json:"floor,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	GoogleURL   *string   `json:"googleUrl,omitempty"`
}

// Center - точка начального фокуса карты
type Center struct {
	Place
	Zoom *float64 `json:"zoom,omitempty"`
}

// ZoomOr возвращает zoom центра или значение по умолчанию
func (c *Center) ZoomOr(def float64) float64 {
	if c == nil || c.Zoom == nil {
		return def
	}
	return *c.Zoom
}
