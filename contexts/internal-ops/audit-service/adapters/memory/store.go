package memory

import (
	"context"
	"sync"

	"vyaparkendra/contexts/internal-ops/audit-service/domain/entities"
)

type Store struct {
	mu      sync.RWMutex
	entries []entities.AuditEntry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, entry entities.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

func (s *Store) Recent(_ context.Context, limit int) ([]entities.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AuditEntry, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, s.entries[i])
	}
	return items, nil
}

func (s *Store) ListByTenant(_ context.Context, tenant string, limit int) ([]entities.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AuditEntry, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(items) < limit; i-- {
		if s.entries[i].ActorTenant == tenant {
			items = append(items, s.entries[i])
		}
	}
	return items, nil
}
