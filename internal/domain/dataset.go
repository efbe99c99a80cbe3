package domain

import "errors"

// ErrIndoorStructure - places-interno.json без imageSize или этажей
var ErrIndoorStructure = errors.New("places document lacks the structure expected for the indoor map")

// Dataset - корневой документ places-*.json. После загрузки не меняется.
type Dataset struct {
	Center    *Center    `json:"center,omitempty"`
	Places    []Place    `json:"places"`
	Floors    []Floor    `json:"floors,omitempty"`
	ImageSize *ImageSize `json:"imageSize,omitempty"`
}

// FloorByID ищет этаж по идентификатору
func (d *Dataset) FloorByID(id FloorID) (Floor, bool) {
	for _, f := range d.Floors {
		if f.ID == id {
			return f, true
		}
	}
	return Floor{}, false
}

// PlaceByName ищет место по имени (первое совпадение)
func (d *Dataset) PlaceByName(name string) (Place, bool) {
	for _, p := range d.Places {
		if p.Name == name {
			return p, true
		}
	}
	return Place{}, false
}

// ValidateIndoor проверяет структуру, без которой внутреннюю карту не построить
func (d *Dataset) ValidateIndoor() error {
	if d == nil || d.ImageSize == nil || len(d.Floors) == 0 {
		return ErrIndoorStructure
	}
	return nil
}

// MapData - загруженные документы одного варианта карты
type MapData struct {
	Variant Variant
	Dataset *Dataset
	Palette *Palette
}
