package memory

import (
	"context"
	"sync"

	"vyaparkendra/contexts/marketplace-core/commission-ledger/domain/entities"
)

// Store keeps ledger entries as an append-only slice, mirroring the
// immutability contract of the postgres table.
type Store struct {
	mu      sync.RWMutex
	entries []entities.LedgerEntry
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AppendEntry(_ context.Context, entry entities.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

func (s *Store) AgentTotals(_ context.Context, agentID string) (float64, float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var credits, debits float64
	for _, entry := range s.entries {
		if entry.AgentID != agentID {
			continue
		}
		switch entry.Kind {
		case entities.EntryKindCredit:
			credits += entry.Amount
		case entities.EntryKindDebit:
			debits += entry.Amount
		}
	}
	return credits, debits, nil
}

func (s *Store) ListByAgent(_ context.Context, agentID string) ([]entities.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.LedgerEntry, 0)
	for _, entry := range s.entries {
		if entry.AgentID == agentID {
			items = append(items, entry)
		}
	}
	return items, nil
}

func (s *Store) TotalCredits(_ context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, entry := range s.entries {
		if entry.Kind == entities.EntryKindCredit {
			total += entry.Amount
		}
	}
	return total, nil
}

// EntriesByReference is a test hook for asserting exactly-once crediting.
func (s *Store) EntriesByReference(referenceID string) []entities.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.LedgerEntry, 0)
	for _, entry := range s.entries {
		if entry.ReferenceID == referenceID {
			items = append(items, entry)
		}
	}
	return items
}

// Snapshot and Restore let the in-memory unit of work roll the store back
// when a later step of an atomic unit fails.
func (s *Store) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entities.LedgerEntry(nil), s.entries...)
}

func (s *Store) Restore(snapshot any) {
	entries, ok := snapshot.([]entities.LedgerEntry)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = entries
}
