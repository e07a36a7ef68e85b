package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SessionManager owns the guest session identifier: generated lazily exactly
// once, stable until discarded, persisted through the configured store.
type SessionManager struct {
	mu     sync.Mutex
	store  SessionStore
	cached string
}

func NewSessionManager(store SessionStore) *SessionManager {
	if store == nil {
		store = NewMemorySessionStore()
	}
	return &SessionManager{store: store}
}

// Ensure returns the current guest session id, creating and persisting one
// if none exists yet.
func (m *SessionManager) Ensure(ctx context.Context) (string, error) {
	if m == nil {
		return "", fmt.Errorf("core: session manager is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached != "" {
		return m.cached, nil
	}
	stored, err := m.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("core: load session id: %w", err)
	}
	if id := strings.TrimSpace(stored); id != "" {
		m.cached = id
		return id, nil
	}

	id := uuid.NewString()
	if err := m.store.Save(ctx, id); err != nil {
		return "", fmt.Errorf("core: persist session id: %w", err)
	}
	m.cached = id
	return id, nil
}

// Discard removes the guest session id from memory and persisted storage.
// The next Ensure call generates a fresh identifier.
func (m *SessionManager) Discard(ctx context.Context) error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cached = ""
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("core: clear session id: %w", err)
	}
	return nil
}
