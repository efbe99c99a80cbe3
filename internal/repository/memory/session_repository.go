package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/domain/repository"
)

type sessionKey struct {
	variant domain.Variant
	id      uuid.UUID
}

type entry struct {
	state     domain.ViewState
	expiresAt time.Time
}

// SessionRepository - хранилище сессий в памяти процесса (SESSION_STORE=memory).
// Просроченные записи удаляются лениво при чтении и при Save.
type SessionRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[sessionKey]entry
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[sessionKey]entry),
	}
}

func (r *SessionRepository) Get(_ context.Context, variant domain.Variant, id uuid.UUID) (*domain.ViewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{variant: variant, id: id}
	e, ok := r.entries[key]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if r.expired(e) {
		delete(r.entries, key)
		return nil, repository.ErrSessionNotFound
	}

	state := e.state
	state.Markers = append([]domain.MarkerRef(nil), e.state.Markers...)
	return &state, nil
}

func (r *SessionRepository) Save(_ context.Context, state *domain.ViewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	cp := *state
	cp.Markers = append([]domain.MarkerRef(nil), state.Markers...)
	r.entries[sessionKey{variant: state.Variant, id: state.ID}] = entry{
		state:     cp,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, variant domain.Variant, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionKey{variant: variant, id: id})
	return nil
}

// Len - число живых сессий
func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	return len(r.entries)
}

func (r *SessionRepository) expired(e entry) bool {
	return r.ttl > 0 && r.now().After(e.expiresAt)
}

func (r *SessionRepository) sweep() {
	for k, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, k)
		}
	}
}
