package monitor

import (
	"context"
	"sync"
)

// MemorySnapshotStore keeps the symbol snapshot in process memory. It backs
// tests and database-less runs; state does not survive a restart.
type MemorySnapshotStore struct {
	mu      sync.Mutex
	symbols map[string]struct{}
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		symbols: make(map[string]struct{}),
	}
}

func (s *MemorySnapshotStore) Load(ctx context.Context) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy to avoid race
	out := make(map[string]struct{}, len(s.symbols))
	for symbol := range s.symbols {
		out[symbol] = struct{}{}
	}
	return out, nil
}

func (s *MemorySnapshotStore) ReplaceAll(ctx context.Context, symbols map[string]struct{}) error {
	next := make(map[string]struct{}, len(symbols))
	for symbol := range symbols {
		next[symbol] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols = next
	return nil
}
