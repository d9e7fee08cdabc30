package client

import (
	"context"
	"sync"
)

// SessionStore persists the session credential under fixed keys for the
// session lifetime (the browser local-storage analogue). Load returns
// (nil, nil) when no session is stored.
type SessionStore interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// MemorySessionStore keeps the session in process memory. Default store;
// tests use it to avoid touching the filesystem.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore { return &MemorySessionStore{} }

func (m *MemorySessionStore) Load(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *MemorySessionStore) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.session = &cp
	return nil
}

func (m *MemorySessionStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
