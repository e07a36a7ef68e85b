package core

import (
	"context"
	"strings"
	"sync"
)

// MemoryCredentialStore keeps the token pair in process memory. It is the
// default store and the test double; durable deployments use store/sql.
type MemoryCredentialStore struct {
	mu   sync.Mutex
	cred Credential
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Load(context.Context) (Credential, error) {
	if s == nil {
		return Credential{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, nil
}

func (s *MemoryCredentialStore) Save(_ context.Context, cred Credential) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

func (s *MemoryCredentialStore) Clear(context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = Credential{}
	return nil
}

type MemorySessionStore struct {
	mu sync.Mutex
	id string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load(context.Context) (string, error) {
	if s == nil {
		return "", nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, nil
}

func (s *MemorySessionStore) Save(_ context.Context, id string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = strings.TrimSpace(id)
	return nil
}

func (s *MemorySessionStore) Clear(context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	return nil
}

var (
	_ CredentialStore = (*MemoryCredentialStore)(nil)
	_ SessionStore    = (*MemorySessionStore)(nil)
)
