package usecase

import (
	"fmt"

	"github.com/poimap-service/internal/domain"
)

// FloorMachine - активный этаж внутренней карты. Состояния - идентификаторы этажей
// датасета, состояния "этаж не выбран" после инициализации нет.
type FloorMachine struct {
	dataset *domain.Dataset
	current domain.FloorID
}

// NewFloorMachine стартует с center.floor, если такой этаж есть, иначе с первого этажа
func NewFloorMachine(ds *domain.Dataset) (*FloorMachine, error) {
	if err := ds.ValidateIndoor(); err != nil {
		return nil, err
	}
	return &FloorMachine{dataset: ds, current: InitialFloor(ds)}, nil
}

// RestoreFloorMachine восстанавливает машину из сохранённого состояния сессии
func RestoreFloorMachine(ds *domain.Dataset, current domain.FloorID) (*FloorMachine, error) {
	m, err := NewFloorMachine(ds)
	if err != nil {
		return nil, err
	}
	if _, ok := ds.FloorByID(current); ok {
		m.current = current
	}
	return m, nil
}

// InitialFloor - этаж, который показывается при открытии карты
func InitialFloor(ds *domain.Dataset) domain.FloorID {
	if ds.Center != nil && ds.Center.Floor != "" {
		if _, ok := ds.FloorByID(ds.Center.Floor); ok {
			return ds.Center.Floor
		}
	}
	if len(ds.Floors) == 0 {
		return ""
	}
	return ds.Floors[0].ID
}

// Current - активный этаж
func (m *FloorMachine) Current() domain.FloorID {
	return m.current
}

// CurrentFloor - описание активного этажа
func (m *FloorMachine) CurrentFloor() domain.Floor {
	f, _ := m.dataset.FloorByID(m.current)
	return f
}

// Switch переключает этаж. Неизвестный id молча игнорируется (false).
// Переключение на текущий этаж допустимо и возвращает true.
func (m *FloorMachine) Switch(id domain.FloorID) (domain.Floor, bool) {
	floor, ok := m.dataset.FloorByID(id)
	if !ok {
		return domain.Floor{}, false
	}
	m.current = id
	return floor, true
}

// Overlay - подложка активного этажа поверх общих границ изображения
func (m *FloorMachine) Overlay() domain.Overlay {
	floor := m.CurrentFloor()
	return domain.Overlay{
		FloorID: floor.ID,
		Image:   floor.Image,
		Bounds:  m.dataset.ImageSize.Bounds(),
	}
}

// Viewport - вид после переключения: центр датасета, если он на этом этаже,
// иначе середина изображения; zoom всегда базовый.
func (m *FloorMachine) Viewport(resolver Resolver, baseZoom float64) domain.Viewport {
	target := m.dataset.ImageSize.Midpoint()
	if c := m.dataset.Center; c != nil && c.Floor == m.current {
		if pos, ok := resolver.Resolve(&c.Place); ok {
			target = pos
		}
	}
	return domain.Viewport{Center: target, Zoom: baseZoom, Animate: true}
}

// Buttons - кнопки этажей в порядке объявления: "P{index}", title - имя этажа
func (m *FloorMachine) Buttons() []domain.FloorButton {
	buttons := make([]domain.FloorButton, 0, len(m.dataset.Floors))
	for i, f := range m.dataset.Floors {
		buttons = append(buttons, floorButton(i, f, f.ID == m.current))
	}
	return buttons
}

func floorButton(index int, f domain.Floor, active bool) domain.FloorButton {
	title := f.Name
	if title == "" {
		title = fmt.Sprintf("Planta %d", index)
	}
	return domain.FloorButton{
		ID:     f.ID,
		Label:  fmt.Sprintf("P%d", index),
		Title:  title,
		Active: active,
	}
}
