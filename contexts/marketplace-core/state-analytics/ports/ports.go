package ports

import (
	"context"
	"time"

	"vyaparkendra/contexts/marketplace-core/state-analytics/domain/entities"
)

type Repository interface {
	// ApplyDelta performs an additive upsert: a missing state row is created
	// zero-initialized before the deltas land. Concurrent callers for the
	// same state must both be reflected (sum, never last-write-wins).
	ApplyDelta(ctx context.Context, state string, revenueDelta float64, requestDelta int64, now time.Time) error
	Get(ctx context.Context, state string) (entities.StateAnalytics, error)
	// ListAll returns states in insertion order of first activity.
	ListAll(ctx context.Context) ([]entities.StateAnalytics, error)
}
