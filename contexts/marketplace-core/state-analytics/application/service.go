package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vyaparkendra/contexts/marketplace-core/state-analytics/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/state-analytics/domain/errors"
	"vyaparkendra/contexts/marketplace-core/state-analytics/ports"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// Bump applies additive deltas to a state's counters, creating the record
// on first activity. Deltas are increments only.
func (s Service) Bump(ctx context.Context, state string, revenueDelta float64, requestDelta int64) error {
	if strings.TrimSpace(state) == "" || revenueDelta < 0 || requestDelta < 0 {
		return domainerrors.ErrInvalidBumpInput
	}
	return s.Repo.ApplyDelta(ctx, strings.TrimSpace(state), revenueDelta, requestDelta, time.Now().UTC())
}

// Get returns the counters for one state. An untracked state surfaces
// ErrStateNotTracked: zero activity, not a failure.
func (s Service) Get(ctx context.Context, state string) (entities.StateAnalytics, error) {
	if strings.TrimSpace(state) == "" {
		return entities.StateAnalytics{}, domainerrors.ErrInvalidBumpInput
	}
	return s.Repo.Get(ctx, strings.TrimSpace(state))
}

func (s Service) ListAll(ctx context.Context) ([]entities.StateAnalytics, error) {
	return s.Repo.ListAll(ctx)
}
