package repository

import (
	"context"
	"sync"
	"time"

	domainRepo "clinic-directory/internal/domain/repository"
)

// memorySessionStore is a process-local SessionStore used in tests and
// single-node setups without redis. Expiry is checked lazily on read.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
}

func NewMemorySessionStore() domainRepo.SessionStore {
	return &memorySessionStore{sessions: make(map[string]time.Time)}
}

func (s *memorySessionStore) Put(ctx context.Context, role, subjectID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey(role, subjectID, tokenID)] = time.Now().Add(ttl)
	return nil
}

func (s *memorySessionStore) Exists(ctx context.Context, role, subjectID, tokenID string) (bool, error) {
	s.mu.RLock()
	expiresAt, ok := s.sessions[sessionKey(role, subjectID, tokenID)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionKey(role, subjectID, tokenID))
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, role, subjectID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey(role, subjectID, tokenID))
	return nil
}
