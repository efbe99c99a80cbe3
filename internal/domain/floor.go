package domain

// Floor - этаж внутренней карты
type Floor struct {
	ID    FloorID `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
}

// ImageSize - размер подложки в пикселях, общий для всех этажей
type ImageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds возвращает границы подложки в виде [[0,0],[h,w]]
func (s ImageSize) Bounds() [2][2]float64 {
	return [2][2]float64{{0, 0}, {s.Height, s.Width}}
}

// Midpoint - геометрический центр изображения
func (s ImageSize) Midpoint() Position {
	return Position{Lat: s.Height / 2, Lng: s.Width / 2}
}
