package ports

import (
	"context"
	"time"

	"vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/entities"
	"vyaparkendra/internal/shared/events"
	"vyaparkendra/internal/shared/outbox"
)

type CreateRequestInput struct {
	CitizenName string
	MSMEID      string
	ServiceID   string
	AgentID     string
	Tenant      string
}

type CompletionResult struct {
	RequestID        string
	CommissionEarned float64
	CompletedAt      time.Time
}

// PricedService is the read-only catalog projection the lifecycle needs to
// settle a completion.
type PricedService struct {
	ServiceID       string
	Price           float64
	MitraCommission float64
	Tenant          string
}

// ServiceCatalog is externally owned reference data. Completion fails with
// ErrServiceMissing when the id no longer resolves.
type ServiceCatalog interface {
	PricedService(ctx context.Context, serviceID string) (PricedService, error)
}

// LedgerRecorder appends the commission credit. Implementations must join
// the ambient unit of work so the credit commits or rolls back with the
// status flip.
type LedgerRecorder interface {
	RecordCredit(ctx context.Context, agentID string, amount float64, referenceID string) error
}

// AnalyticsBumper applies additive per-state counter deltas inside the
// same unit of work.
type AnalyticsBumper interface {
	Bump(ctx context.Context, state string, revenueDelta float64, requestDelta int64) error
}

type Repository interface {
	CreateRequest(ctx context.Context, request entities.ServiceRequest) error
	// OpenRequestForUpdate resolves the request only when it exists, is
	// owned by agentID and is still in_progress, locking it against
	// concurrent completers. Everything else is ErrRequestNotFound.
	OpenRequestForUpdate(ctx context.Context, requestID string, agentID string) (entities.ServiceRequest, error)
	// MarkCompleted is a conditional terminal transition: it only applies
	// while the row is still in_progress and reports ErrRequestNotFound
	// when a racer already won.
	MarkCompleted(ctx context.Context, requestID string, completedAt time.Time) error
	ListByAgent(ctx context.Context, agentID string) ([]entities.ServiceRequest, error)
	CountRequests(ctx context.Context) (int64, error)
}

// UnitOfWork scopes a set of writes into one all-or-nothing unit with
// rollback on every error path.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventEnvelope = events.Envelope

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, envelope EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
