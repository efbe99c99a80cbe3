package usecase

import (
	"github.com/google/uuid"
	"github.com/poimap-service/internal/domain"
)

// CenterMarkerID - handle маркера центра внешней карты
const CenterMarkerID = "center"

// Renderer строит слой маркеров и боковой список по отфильтрованным местам.
// Каждый вызов Markers создаёт новые handle: реестр маркер -> место
// пересобирается целиком, без инкрементальных изменений.
type Renderer struct {
	variant  domain.Variant
	palette  *domain.Palette
	resolver Resolver
	newID    func() string
}

func NewRenderer(data *domain.MapData, resolver Resolver) *Renderer {
	return &Renderer{
		variant:  data.Variant,
		palette:  data.Palette,
		resolver: resolver,
		newID:    func() string { return uuid.NewString() },
	}
}

// Markers рисует маркеры для мест с позицией; места без позиции пропускаются
func (r *Renderer) Markers(places []domain.Place) ([]domain.Marker, []domain.MarkerRef) {
	markers := make([]domain.Marker, 0, len(places))
	registry := make([]domain.MarkerRef, 0, len(places))

	for i := range places {
		p := &places[i]
		pos, ok := r.resolver.Resolve(p)
		if !ok {
			continue
		}

		id := r.newID()
		markers = append(markers, domain.Marker{
			ID:        id,
			PlaceName: p.Name,
			Position:  pos,
			Color:     ColorOf(p.Category, r.palette),
			Popup:     r.popup(p, &pos),
		})
		registry = append(registry, domain.MarkerRef{ID: id, PlaceName: p.Name, Position: pos})
	}

	return markers, registry
}

func (r *Renderer) popup(p *domain.Place, pos *domain.Position) domain.Popup {
	popup := domain.Popup{
		Title:       p.Name,
		Description: p.Description,
	}
	if r.variant == domain.VariantOutdoor {
		popup.DirectionsURL = DirectionsURL(p, pos)
	}
	return popup
}

// List - строки бокового списка; показываются и места без позиции
func (r *Renderer) List(places []domain.Place) []domain.ListEntry {
	entries := make([]domain.ListEntry, 0, len(places))
	for i := range places {
		p := &places[i]
		entry := domain.ListEntry{
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Floor:       p.Floor,
		}
		if r.variant == domain.VariantOutdoor {
			var pos *domain.Position
			if resolved, ok := r.resolver.Resolve(p); ok {
				pos = &resolved
			}
			entry.DirectionsURL = DirectionsURL(p, pos)
		}
		entries = append(entries, entry)
	}
	return entries
}

// CenterMarker - отдельный маркер центра внешней карты цвета по умолчанию
func (r *Renderer) CenterMarker(center *domain.Center) (domain.Marker, bool) {
	if r.variant != domain.VariantOutdoor || center == nil {
		return domain.Marker{}, false
	}
	pos, ok := r.resolver.Resolve(&center.Place)
	if !ok {
		return domain.Marker{}, false
	}
	return domain.Marker{
		ID:        CenterMarkerID,
		PlaceName: center.Name,
		Position:  pos,
		Color:     DefaultColor(r.palette),
		Center:    true,
		Popup: domain.Popup{
			Title:       center.Name,
			Description: center.Description,
		},
	}, true
}
