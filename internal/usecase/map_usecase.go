package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/poimap-service/internal/config"
	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
	apperrors "github.com/poimap-service/internal/pkg/errors"
	"github.com/poimap-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	crsWebMercator = "EPSG3857"
	crsSimple      = "Simple"

	menuToggleTitle = "Mostrar/ocultar menú"
)

// MapLoader загружает документы варианта карты
type MapLoader interface {
	Load(ctx context.Context, variant domain.Variant) (*domain.MapData, error)
}

// mapRuntime - загруженный вариант карты; после Register не меняется
type mapRuntime struct {
	data     *domain.MapData
	resolver Resolver
	renderer *Renderer
	chips    []string
}

// MapUseCase - контроллер карт: конфигурация, фильтрация и события сессий
type MapUseCase struct {
	sessions repository.SessionRepository
	settings config.MapConfig
	logger   *zap.Logger

	mapsMu sync.RWMutex
	maps   map[domain.Variant]*mapRuntime

	// события применяются по одному
	eventsMu sync.Mutex
	handlers map[string]eventHandler
}

// NewMapUseCase - создание нового MapUseCase
func NewMapUseCase(
	sessions repository.SessionRepository,
	settings config.MapConfig,
	logger *zap.Logger,
) *MapUseCase {
	uc := &MapUseCase{
		sessions: sessions,
		settings: settings,
		logger:   logger,
		maps:     make(map[domain.Variant]*mapRuntime, 2),
	}
	uc.handlers = uc.eventHandlers()
	return uc
}

// LoadMaps загружает оба варианта независимо. Ошибка одного варианта логируется
// и делает только его недоступным; возвращается число загруженных вариантов.
func (uc *MapUseCase) LoadMaps(ctx context.Context, loader MapLoader) int {
	variants := []domain.Variant{domain.VariantOutdoor, domain.VariantIndoor}
	results := make([]*domain.MapData, len(variants))

	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := loader.Load(ctx, v)
			if err != nil {
				uc.logger.Error("Failed to load map data",
					zap.String("variant", string(v)),
					zap.Error(err))
				return
			}
			results[i] = data
		}()
	}
	wg.Wait()

	loaded := 0
	for _, data := range results {
		if data == nil {
			continue
		}
		if err := uc.Register(data); err != nil {
			uc.logger.Error("Failed to register map data",
				zap.String("variant", string(data.Variant)),
				zap.Error(err))
			continue
		}
		loaded++
	}
	return loaded
}

// Register делает вариант карты доступным
func (uc *MapUseCase) Register(data *domain.MapData) error {
	if data == nil || !data.Variant.Valid() || data.Dataset == nil {
		return apperrors.ErrInvalidDataset
	}
	if data.Variant == domain.VariantIndoor {
		if err := data.Dataset.ValidateIndoor(); err != nil {
			return apperrors.ErrInvalidDataset.WithDetails(map[string]interface{}{"reason": err.Error()})
		}
	}

	resolver := NewResolver(data)
	rt := &mapRuntime{
		data:     data,
		resolver: resolver,
		renderer: NewRenderer(data, resolver),
		chips:    CategoryChips(data.Dataset.Places),
	}

	uc.mapsMu.Lock()
	uc.maps[data.Variant] = rt
	uc.mapsMu.Unlock()
	return nil
}

// Available - варианты, загруженные без ошибок
func (uc *MapUseCase) Available() []domain.Variant {
	uc.mapsMu.RLock()
	defer uc.mapsMu.RUnlock()

	var out []domain.Variant
	for _, v := range []domain.Variant{domain.VariantOutdoor, domain.VariantIndoor} {
		if _, ok := uc.maps[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func (uc *MapUseCase) runtime(variant domain.Variant) (*mapRuntime, error) {
	if !variant.Valid() {
		return nil, apperrors.ErrMapNotFound
	}
	uc.mapsMu.RLock()
	rt, ok := uc.maps[variant]
	uc.mapsMu.RUnlock()
	if !ok {
		return nil, apperrors.ErrMapUnavailable
	}
	return rt, nil
}

// GetMapConfig - параметры виджета, фишки и этажи варианта
func (uc *MapUseCase) GetMapConfig(variant domain.Variant) (*dto.MapConfigResponse, error) {
	rt, err := uc.runtime(variant)
	if err != nil {
		return nil, err
	}
	ds := rt.data.Dataset

	resp := &dto.MapConfigResponse{
		Variant: variant,
		Chips:   rt.chips,
		Palette: rt.data.Palette,
		Menu: dto.MenuResponse{
			ToggleTitle: menuToggleTitle,
			SwitchTitle: switchTitle(variant),
			SwitchHref:  variant.Other().Page(),
		},
	}

	view := uc.initialView(rt, "")
	resp.Center = view.Center
	resp.Zoom = view.Zoom

	if variant == domain.VariantIndoor {
		machine, err := NewFloorMachine(ds)
		if err != nil {
			return nil, apperrors.ErrInvalidDataset
		}
		bounds := ds.ImageSize.Bounds()
		resp.CRS = crsSimple
		resp.MinZoom = view.Zoom - uc.settings.IndoorZoomSpread
		resp.MaxZoom = view.Zoom + uc.settings.IndoorZoomSpread
		resp.ZoomSnap = uc.settings.IndoorZoomSnap
		resp.FocusZoom = uc.settings.IndoorFocusZoom
		resp.Bounds = &bounds
		resp.Floors = machine.Buttons()
		return resp, nil
	}

	resp.CRS = crsWebMercator
	resp.TileURL = uc.settings.TileURL
	resp.TileAttribution = uc.settings.TileAttribution
	resp.MinZoom = uc.settings.OutdoorMinZoom
	resp.MaxZoom = uc.settings.OutdoorMaxZoom
	resp.FocusZoom = uc.settings.OutdoorFocusZoom
	return resp, nil
}

func switchTitle(v domain.Variant) string {
	if v == domain.VariantIndoor {
		return "Cambiar a mapa externo"
	}
	return "Cambiar a mapa interno"
}

// initialView - вид при открытии страницы. Внутри здания это вид активного этажа:
// центр датасета, только если он на этом этаже, иначе середина изображения.
func (uc *MapUseCase) initialView(rt *mapRuntime, floor domain.FloorID) domain.Viewport {
	ds := rt.data.Dataset
	if rt.data.Variant == domain.VariantIndoor {
		machine, err := RestoreFloorMachine(ds, floor)
		if err != nil {
			return domain.Viewport{Center: ds.ImageSize.Midpoint(), Zoom: ds.Center.ZoomOr(0)}
		}
		view := machine.Viewport(rt.resolver, ds.Center.ZoomOr(0))
		view.Animate = false
		return view
	}

	var target domain.Position
	if ds.Center != nil {
		if pos, ok := rt.resolver.Resolve(&ds.Center.Place); ok {
			target = pos
		}
	}
	return domain.Viewport{Center: target, Zoom: ds.Center.ZoomOr(uc.settings.OutdoorZoom)}
}

func (uc *MapUseCase) focusZoom(variant domain.Variant) float64 {
	if variant == domain.VariantIndoor {
		return uc.settings.IndoorFocusZoom
	}
	return uc.settings.OutdoorFocusZoom
}

// ListPlaces - фильтрация мест без сессии
func (uc *MapUseCase) ListPlaces(variant domain.Variant, q dto.PlacesQuery) (*dto.PlacesResponse, error) {
	rt, err := uc.runtime(variant)
	if err != nil {
		return nil, err
	}

	places := FilterPlaces(rt.data.Dataset.Places, Criteria{Query: q.Query, Category: q.Category})
	if variant == domain.VariantIndoor && q.Floor != "" {
		places = OnFloor(places, domain.FloorID(q.Floor))
	}

	resp := &dto.PlacesResponse{
		Places: make([]dto.PlaceItem, 0, len(places)),
		Total:  len(places),
	}
	for i := range places {
		p := places[i]
		item := dto.PlaceItem{
			Place: p,
			Color: ColorOf(p.Category, rt.data.Palette),
		}
		if pos, ok := rt.resolver.Resolve(&p); ok {
			item.Position = &pos
			item.OnMap = true
			resp.OnMap++
		}
		if variant == domain.VariantOutdoor {
			item.DirectionsURL = DirectionsURL(&p, item.Position)
		}
		resp.Places = append(resp.Places, item)
	}
	return resp, nil
}

// GetCategories - палитра и фишки варианта
func (uc *MapUseCase) GetCategories(variant domain.Variant) (*dto.CategoriesResponse, error) {
	rt, err := uc.runtime(variant)
	if err != nil {
		return nil, err
	}
	return &dto.CategoriesResponse{
		Palette: rt.data.Palette,
		Chips:   rt.chips,
	}, nil
}

// CreateSession - новая сессия с начальным рендером
func (uc *MapUseCase) CreateSession(ctx context.Context, variant domain.Variant, req dto.CreateSessionRequest) (*dto.RenderResponse, error) {
	rt, err := uc.runtime(variant)
	if err != nil {
		return nil, err
	}

	state := &domain.ViewState{
		ID:             uuid.New(),
		Variant:        variant,
		Query:          req.Query,
		Category:       rt.chip(req.Category),
		SidebarVisible: true,
		View:           uc.initialView(rt, domain.FloorID(req.Floor)),
	}
	if variant == domain.VariantIndoor {
		machine, err := RestoreFloorMachine(rt.data.Dataset, domain.FloorID(req.Floor))
		if err != nil {
			return nil, apperrors.ErrInvalidDataset
		}
		state.FloorID = machine.Current()
	}

	resp := uc.render(rt, state)
	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Debug("Session created",
		zap.String("variant", string(variant)),
		zap.String("session_id", state.ID.String()))
	return resp, nil
}

// GetSession - текущий рендер сессии
func (uc *MapUseCase) GetSession(ctx context.Context, variant domain.Variant, rawID string) (*dto.RenderResponse, error) {
	rt, err := uc.runtime(variant)
	if err != nil {
		return nil, err
	}
	// рендер пересохраняет реестр маркеров, поэтому под той же блокировкой, что и события
	uc.eventsMu.Lock()
	defer uc.eventsMu.Unlock()

	state, err := uc.load(ctx, variant, rawID)
	if err != nil {
		return nil, err
	}

	resp := uc.render(rt, state)
	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}
	return resp, nil
}

// CloseSession удаляет сессию
func (uc *MapUseCase) CloseSession(ctx context.Context, variant domain.Variant, rawID string) error {
	if _, err := uc.runtime(variant); err != nil {
		return err
	}

	uc.eventsMu.Lock()
	defer uc.eventsMu.Unlock()

	state, err := uc.load(ctx, variant, rawID)
	if err != nil {
		return err
	}
	if err := uc.sessions.Delete(ctx, variant, state.ID); err != nil {
		uc.logger.Error("Failed to delete session",
			zap.String("session_id", rawID),
			zap.Error(err))
		return apperrors.ErrSessionStoreError
	}
	return nil
}

// Dispatch применяет событие к сессии и возвращает новый рендер
func (uc *MapUseCase) Dispatch(ctx context.Context, variant domain.Variant, rawID string, req dto.EventRequest) (*dto.RenderResponse, error) {
	rt, err := uc.runtime(variant)
	if err != nil {
		return nil, err
	}
	handler, ok := uc.handlers[req.Control]
	if !ok {
		return nil, apperrors.ErrInvalidEvent.WithDetails(map[string]interface{}{"control": req.Control})
	}

	uc.eventsMu.Lock()
	defer uc.eventsMu.Unlock()

	state, err := uc.load(ctx, variant, rawID)
	if err != nil {
		return nil, err
	}

	outcome, err := handler(rt, state, req.Value)
	if err != nil {
		return nil, err
	}

	resp := uc.render(rt, state)
	if outcome.focusPlace != "" {
		// фокус только после перестроения реестра маркеров
		if ref, ok := state.MarkerFor(outcome.focusPlace); ok {
			state.View = domain.Viewport{Center: ref.Position, Zoom: uc.focusZoom(variant), Animate: true}
			resp.View = state.View
			resp.OpenPopup = ref.ID
		}
	}
	resp.Navigate = outcome.navigate

	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Debug("Event dispatched",
		zap.String("variant", string(variant)),
		zap.String("session_id", state.ID.String()),
		zap.String("control", req.Control),
		zap.Int("markers", len(state.Markers)))
	return resp, nil
}

// render пересобирает маркеры, список, фишки и этажи по состоянию сессии.
// Реестр маркеров сессии заменяется целиком.
func (uc *MapUseCase) render(rt *mapRuntime, state *domain.ViewState) *dto.RenderResponse {
	ds := rt.data.Dataset
	filtered := FilterPlaces(ds.Places, Criteria{Query: state.Query, Category: state.Category})

	onMap := filtered
	if rt.data.Variant == domain.VariantIndoor {
		onMap = OnFloor(filtered, state.FloorID)
	}
	markers, registry := rt.renderer.Markers(onMap)
	state.Markers = registry

	resp := &dto.RenderResponse{
		SessionID: state.ID,
		Variant:   rt.data.Variant,
		State: dto.SessionStateResponse{
			Query:          state.Query,
			Category:       state.Category,
			Floor:          state.FloorID,
			SidebarVisible: state.SidebarVisible,
		},
		View:             state.View,
		List:             rt.renderer.List(filtered),
		Chips:            rt.chipStates(state.Category),
		SidebarCollapsed: !state.SidebarVisible,
	}

	if center, ok := rt.renderer.CenterMarker(ds.Center); ok {
		resp.Markers = append(make([]domain.Marker, 0, len(markers)+1), center)
		resp.Markers = append(resp.Markers, markers...)
	} else {
		resp.Markers = markers
	}

	if rt.data.Variant == domain.VariantIndoor {
		if machine, err := RestoreFloorMachine(ds, state.FloorID); err == nil {
			overlay := machine.Overlay()
			resp.Overlay = &overlay
			resp.Floors = machine.Buttons()
		}
	}
	return resp
}

// chip возвращает метку фишки; неизвестная метка сбрасывается на "Todos"
func (rt *mapRuntime) chip(label string) string {
	for _, c := range rt.chips {
		if c == label {
			return c
		}
	}
	return domain.CategoryAll
}

func (rt *mapRuntime) chipStates(active string) []domain.Chip {
	chips := make([]domain.Chip, 0, len(rt.chips))
	for _, c := range rt.chips {
		chips = append(chips, domain.Chip{Label: c, Active: c == active})
	}
	return chips
}

func (uc *MapUseCase) load(ctx context.Context, variant domain.Variant, rawID string) (*domain.ViewState, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperrors.ErrInvalidSessionID
	}
	state, err := uc.sessions.Get(ctx, variant, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		uc.logger.Error("Failed to load session",
			zap.String("session_id", rawID),
			zap.Error(err))
		return nil, apperrors.ErrSessionStoreError
	}
	return state, nil
}

func (uc *MapUseCase) save(ctx context.Context, state *domain.ViewState) error {
	if err := uc.sessions.Save(ctx, state); err != nil {
		uc.logger.Error("Failed to save session",
			zap.String("session_id", state.ID.String()),
			zap.Error(err))
		return apperrors.ErrSessionStoreError
	}
	return nil
}
