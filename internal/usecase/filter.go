package usecase

import (
	"strings"

	"github.com/poimap-service/internal/domain"
)

// Criteria - текстовый запрос и активная фишка категории
type Criteria struct {
	Query    string
	Category string
}

// NormalizeQuery обрезает пробелы и приводит запрос к нижнему регистру
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterPlaces оставляет места, подходящие под запрос и категорию, в исходном порядке.
//
// Категория сравнивается с сырым полем category: место без категории не попадает
// под фишку "Otros", хотя и красится её цветом.
func FilterPlaces(places []domain.Place, c Criteria) []domain.Place {
	q := NormalizeQuery(c.Query)
	category := c.Category
	if category == "" {
		category = domain.CategoryAll
	}

	result := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if matchesQuery(&p, q) && matchesCategory(&p, category) {
			result = append(result, p)
		}
	}
	return result
}

func matchesQuery(p *domain.Place, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func matchesCategory(p *domain.Place, category string) bool {
	return category == domain.CategoryAll || p.Category == category
}

// OnFloor - места текущего этажа (только для слоя маркеров)
func OnFloor(places []domain.Place, floor domain.FloorID) []domain.Place {
	result := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if p.Floor == floor {
			result = append(result, p)
		}
	}
	return result
}

// CategoryChips - "Todos" и различные категории мест в порядке первого появления
func CategoryChips(places []domain.Place) []string {
	seen := make(map[string]struct{}, len(places))
	chips := []string{domain.CategoryAll}
	for _, p := range places {
		name := EffectiveCategory(p.Category)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		chips = append(chips, name)
	}
	return chips
}
