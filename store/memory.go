package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/provlabs/funding-trading-bridge/types"
)

// MemoryStore keeps the contract state in process memory. It backs the
// offline tooling and tests; service deployments use the Postgres store.
type MemoryStore struct {
	mu    sync.RWMutex
	state *types.ContractState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*types.ContractState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, fmt.Errorf("%w: contract state has not been stored", types.ErrNotFound)
	}
	return s.state.Copy(), nil
}

func (s *MemoryStore) Save(_ context.Context, state *types.ContractState) error {
	if state == nil {
		return fmt.Errorf("%w: cannot store nil contract state", types.ErrStorage)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Copy()
	return nil
}
