package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/poimap-service/internal/domain"
)

// ErrSessionNotFound - сессия не найдена или истекла
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository хранит состояние интерфейса зрителей
type SessionRepository interface {
	// Get возвращает состояние сессии
	Get(ctx context.Context, variant domain.Variant, id uuid.UUID) (*domain.ViewState, error)

	// Save сохраняет состояние сессии
	Save(ctx context.Context, state *domain.ViewState) error

	// Delete удаляет сессию
	Delete(ctx context.Context, variant domain.Variant, id uuid.UUID) error
}
