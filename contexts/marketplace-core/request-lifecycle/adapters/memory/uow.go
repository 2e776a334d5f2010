package memory

import (
	"context"
	"sync"
)

// Transactional is implemented by in-memory stores that can capture and
// restore their full state, which is how the dev-mode unit of work
// emulates rollback.
type Transactional interface {
	Snapshot() any
	Restore(snapshot any)
}

// UnitOfWork serializes units of work behind one mutex and restores every
// participant's snapshot when the unit fails partway.
type UnitOfWork struct {
	mu           sync.Mutex
	Participants []Transactional
}

func NewUnitOfWork(participants ...Transactional) *UnitOfWork {
	return &UnitOfWork{Participants: participants}
}

func (u *UnitOfWork) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshots := make([]any, len(u.Participants))
	for i, participant := range u.Participants {
		snapshots[i] = participant.Snapshot()
	}

	if err := fn(ctx); err != nil {
		for i, participant := range u.Participants {
			participant.Restore(snapshots[i])
		}
		return err
	}
	return nil
}
