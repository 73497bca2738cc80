package store

import (
	"sync"

	"github.com/forezy/forezy-go/internal/model"
)

// MemStore is an in-memory Store, used in tests and embedded setups where
// persistence across launches is not wanted.
type MemStore struct {
	mu      sync.Mutex
	session *model.Session
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.session = &cp
	return nil
}

func (s *MemStore) Load() (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil
	}
	cp := *s.session
	return &cp, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}
