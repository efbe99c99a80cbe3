package usecase

import "github.com/poimap-service/internal/domain"

// ColorOf возвращает цвет категории. Без категории используется "Otros";
// неизвестная категория получает defaultColor палитры.
func ColorOf(category string, palette *domain.Palette) string {
	if palette == nil {
		return domain.FallbackColor
	}

	name := EffectiveCategory(category)
	for _, c := range palette.Categories {
		if c.Name == name {
			return c.Color
		}
	}

	return DefaultColor(palette)
}

// DefaultColor - defaultColor палитры или встроенный цвет
func DefaultColor(palette *domain.Palette) string {
	if palette == nil || palette.DefaultColor == "" {
		return domain.FallbackColor
	}
	return palette.DefaultColor
}

// EffectiveCategory подставляет "Otros" для мест без категории
func EffectiveCategory(category string) string {
	if category == "" {
		return domain.DefaultCategory
	}
	return category
}
