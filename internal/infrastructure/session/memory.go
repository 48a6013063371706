package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fruito/storefront/internal/api/metrics"
)

// MemoryStore keeps sessions in process memory. Used when no Redis is
// configured (development) and throughout the test suite. Sessions do not
// survive a restart, which is acceptable for both.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
}

type memorySession struct {
	user  []byte
	admin bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession)}
}

func (s *MemoryStore) GetUser(_ context.Context, sid string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sid]
	if !ok || sess.user == nil {
		return nil, nil
	}
	if !json.Valid(sess.user) {
		metrics.SessionDecodeFailuresTotal.Inc()
		return nil, nil
	}
	out := make([]byte, len(sess.user))
	copy(out, sess.user)
	return out, nil
}

func (s *MemoryStore) SetUser(_ context.Context, sid string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.session(sid).user = stored
	return nil
}

func (s *MemoryStore) ClearUser(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sid]; ok {
		sess.user = nil
	}
	return nil
}

func (s *MemoryStore) GetAdminFlag(_ context.Context, sid string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sid]
	return ok && sess.admin, nil
}

func (s *MemoryStore) SetAdminFlag(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sid).admin = true
	return nil
}

func (s *MemoryStore) ClearAdminFlag(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sid]; ok {
		sess.admin = false
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// session returns the entry for sid, creating it when absent.
// Callers must hold the write lock.
func (s *MemoryStore) session(sid string) *memorySession {
	sess, ok := s.sessions[sid]
	if !ok {
		sess = &memorySession{}
		s.sessions[sid] = sess
	}
	return sess
}

// Corrupt overwrites a session's user payload with a non-JSON blob.
// Test helper for exercising the decode-failure policy.
func (s *MemoryStore) Corrupt(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sid).user = []byte("{not json")
}
