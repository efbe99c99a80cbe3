package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionRepository - состояния зрителей в Redis; TTL продлевается при каждом Save
func NewSessionRepository(redis *Redis, ttl time.Duration) repository.SessionRepository {
	return &sessionRepository{
		client: redis.Client(),
		ttl:    ttl,
		logger: redis.logger,
	}
}

func sessionKey(variant domain.Variant, id uuid.UUID) string {
	return fmt.Sprintf("session:%s:%s", variant, id)
}

func (r *sessionRepository) Get(ctx context.Context, variant domain.Variant, id uuid.UUID) (*domain.ViewState, error) {
	key := sessionKey(variant, id)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get session", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("session get error: %w", err)
	}

	var state domain.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		r.logger.Error("Failed to unmarshal session", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &state, nil
}

func (r *sessionRepository) Save(ctx context.Context, state *domain.ViewState) error {
	key := sessionKey(state.Variant, state.ID)

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save session", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("session set error: %w", err)
	}

	r.logger.Debug("Session saved", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, variant domain.Variant, id uuid.UUID) error {
	key := sessionKey(variant, id)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete session", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}
