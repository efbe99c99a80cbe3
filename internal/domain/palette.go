package domain

// DefaultCategory - категория мест без поля category
const DefaultCategory = "Otros"

// FallbackColor используется, когда палитра не загружена
const FallbackColor = "#6c5ce7"

// Category - категория и её цвет
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Palette - содержимое categories-*.json
type Palette struct {
	Categories   []Category `json:"categories"`
	DefaultColor string     `json:"defaultColor"`
}
