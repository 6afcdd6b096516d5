package session

import "sync"

// MemoryStore is the fallback when the local database cannot be opened.
// Sessions held here do not survive the process.
type MemoryStore struct {
	mu  sync.Mutex
	cur *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return nil, false, nil
	}
	copied := *s.cur
	return &copied, true, nil
}

func (s *MemoryStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = &session
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	return nil
}
