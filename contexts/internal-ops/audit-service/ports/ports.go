package ports

import (
	"context"

	"vyaparkendra/contexts/internal-ops/audit-service/domain/entities"
)

type Repository interface {
	Append(ctx context.Context, entry entities.AuditEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]entities.AuditEntry, error)
	ListByTenant(ctx context.Context, tenant string, limit int) ([]entities.AuditEntry, error)
}

// TenantResolver maps an actor to their home tenant. Identity owns this
// lookup; the audit trail only denormalizes its answer.
type TenantResolver interface {
	TenantOf(ctx context.Context, userID string) (string, error)
}
