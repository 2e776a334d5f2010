package memory

import (
	"context"
	"sync"
	"time"

	"vyaparkendra/contexts/marketplace-core/state-analytics/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/state-analytics/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu     sync.RWMutex
	states map[string]entities.StateAnalytics
	order  []string
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]entities.StateAnalytics),
	}
}

func (s *Store) ApplyDelta(_ context.Context, state string, revenueDelta float64, requestDelta int64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.states[state]
	if !ok {
		record = entities.StateAnalytics{
			AnalyticsID: uuid.NewString(),
			State:       state,
			CreatedAt:   now,
		}
		s.order = append(s.order, state)
	}
	record.TotalRevenue += revenueDelta
	record.TotalRequests += requestDelta
	record.UpdatedAt = now
	s.states[state] = record
	return nil
}

func (s *Store) Get(_ context.Context, state string) (entities.StateAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.states[state]
	if !ok {
		return entities.StateAnalytics{}, domainerrors.ErrStateNotTracked
	}
	return record, nil
}

func (s *Store) ListAll(_ context.Context) ([]entities.StateAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.StateAnalytics, 0, len(s.order))
	for _, state := range s.order {
		items = append(items, s.states[state])
	}
	return items, nil
}

// Snapshot and Restore let the in-memory unit of work roll counters back
// when a later step of an atomic unit fails.
func (s *Store) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make(map[string]entities.StateAnalytics, len(s.states))
	for key, value := range s.states {
		states[key] = value
	}
	return snapshot{
		states: states,
		order:  append([]string(nil), s.order...),
	}
}

func (s *Store) Restore(snap any) {
	value, ok := snap.(snapshot)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states = value.states
	s.order = value.order
}

type snapshot struct {
	states map[string]entities.StateAnalytics
	order  []string
}
