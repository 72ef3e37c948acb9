package store

import (
	"context"
	"sync"
)

// Memory keeps both documents in process memory. Used by tests and when no
// DATABASE_URL is configured (single-device offline deployments).
type Memory struct {
	mu       sync.RWMutex
	master   []byte
	sessions map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{sessions: map[string][]byte{}}
}

func (s *Memory) LoadMaster(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.master == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.master...), nil
}

func (s *Memory) SaveMaster(ctx context.Context, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.master = append([]byte(nil), doc...)
	return nil
}

func (s *Memory) LoadSession(ctx context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), doc...), nil
}

func (s *Memory) SaveSession(ctx context.Context, id string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append([]byte(nil), doc...)
	return nil
}

func (s *Memory) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Memory) Ping(ctx context.Context) error { return nil }

func (s *Memory) Close() {}
