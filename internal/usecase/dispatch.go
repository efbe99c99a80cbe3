package usecase

import (
	"github.com/poimap-service/internal/domain"
	apperrors "github.com/poimap-service/internal/pkg/errors"
)

// Идентификаторы элементов управления страницы
const (
	ControlSearch    = "search"
	ControlCategory  = "category"
	ControlFloor     = "floor"
	ControlPlace     = "place"
	ControlSidebar   = "sidebar"
	ControlSwitchMap = "switch-map"
)

// eventOutcome - что сделать после перерисовки
type eventOutcome struct {
	// focusPlace - место, на котором центрировать карту и открыть popup
	focusPlace string
	navigate   string
}

type eventHandler func(rt *mapRuntime, state *domain.ViewState, value string) (eventOutcome, error)

func (uc *MapUseCase) eventHandlers() map[string]eventHandler {
	return map[string]eventHandler{
		ControlSearch:    handleSearch,
		ControlCategory:  handleCategory,
		ControlFloor:     handleFloor,
		ControlPlace:     handlePlace,
		ControlSidebar:   handleSidebar,
		ControlSwitchMap: handleSwitchMap,
	}
}

func handleSearch(_ *mapRuntime, state *domain.ViewState, value string) (eventOutcome, error) {
	state.Query = value
	return eventOutcome{}, nil
}

func handleCategory(rt *mapRuntime, state *domain.ViewState, value string) (eventOutcome, error) {
	state.Category = rt.chip(value)
	return eventOutcome{}, nil
}

func handleFloor(rt *mapRuntime, state *domain.ViewState, value string) (eventOutcome, error) {
	if rt.data.Variant != domain.VariantIndoor {
		return eventOutcome{}, apperrors.ErrInvalidEvent.WithDetails(map[string]interface{}{
			"control": ControlFloor,
			"variant": string(rt.data.Variant),
		})
	}
	switchFloor(rt, state, domain.FloorID(value))
	return eventOutcome{}, nil
}

// switchFloor - переход машины этажей; неизвестный этаж ничего не меняет
func switchFloor(rt *mapRuntime, state *domain.ViewState, id domain.FloorID) bool {
	machine, err := RestoreFloorMachine(rt.data.Dataset, state.FloorID)
	if err != nil {
		return false
	}
	if _, ok := machine.Switch(id); !ok {
		return false
	}
	state.FloorID = machine.Current()
	state.View = machine.Viewport(rt.resolver, rt.data.Dataset.Center.ZoomOr(0))
	return true
}

// handlePlace - клик по строке списка. На внутренней карте этаж переключается
// синхронно, фокус выполняется после перерисовки по новому реестру маркеров.
func handlePlace(rt *mapRuntime, state *domain.ViewState, value string) (eventOutcome, error) {
	place, ok := rt.data.Dataset.PlaceByName(value)
	if !ok {
		return eventOutcome{}, nil
	}
	if rt.data.Variant == domain.VariantIndoor && place.Floor != "" && place.Floor != state.FloorID {
		switchFloor(rt, state, place.Floor)
	}
	return eventOutcome{focusPlace: place.Name}, nil
}

func handleSidebar(_ *mapRuntime, state *domain.ViewState, _ string) (eventOutcome, error) {
	state.SidebarVisible = !state.SidebarVisible
	return eventOutcome{}, nil
}

func handleSwitchMap(rt *mapRuntime, _ *domain.ViewState, _ string) (eventOutcome, error) {
	return eventOutcome{navigate: "/" + rt.data.Variant.Other().Page()}, nil
}
