package store

import (
	"context"
	"sync"

	"notary/internal/notary/models"
)

// MemoryStore keeps the aggregate in process memory. It favors clarity over
// performance and is the default backend for tests and local runs.
type MemoryStore struct {
	mu    sync.RWMutex
	state *models.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*models.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, ErrNotInitialized
	}
	return s.state.Clone()
}

func (s *MemoryStore) Save(_ context.Context, state *models.State) error {
	// Deep copy so the caller's reference is not retained.
	copied, err := state.Clone()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = copied
	return nil
}

func (s *MemoryStore) Initialized(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state != nil, nil
}
