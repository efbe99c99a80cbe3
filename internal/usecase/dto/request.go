package dto

// EventRequest - событие интерфейса карты
type EventRequest struct {
	Control string `json:"control" validate:"required,oneof=search category floor place sidebar switch-map"`
	Value   string `json:"value" validate:"max=512"`
}

// PlacesQuery - параметры фильтрации списка мест
type PlacesQuery struct {
	Query    string `query:"q" validate:"max=256"`
	Category string `query:"category" validate:"max=128"`
	Floor    string `query:"floor" validate:"max=64"`
}

// CreateSessionRequest - параметры новой сессии (все необязательные)
type CreateSessionRequest struct {
	Query    string `json:"query,omitempty" validate:"max=256"`
	Category string `json:"category,omitempty" validate:"max=128"`
	Floor    string `json:"floor,omitempty" validate:"max=64"`
}
