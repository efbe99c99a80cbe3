package repository

import "context"

// DocumentSource отдаёт сырые JSON-документы карт (places-*.json, categories-*.json)
type DocumentSource interface {
	// Fetch возвращает содержимое документа по имени
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Name возвращает тип источника для логов
	Name() string
}

// DocumentSink принимает документы карт при публикации
type DocumentSink interface {
	// Put сохраняет документ, перезаписывая прежнюю версию
	Put(ctx context.Context, name string, data []byte) error

	// Name возвращает тип хранилища для логов
	Name() string
}
