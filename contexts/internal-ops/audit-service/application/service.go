package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"vyaparkendra/contexts/internal-ops/audit-service/domain/entities"
	domainerrors "vyaparkendra/contexts/internal-ops/audit-service/domain/errors"
	"vyaparkendra/contexts/internal-ops/audit-service/ports"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

type Service struct {
	Repo    ports.Repository
	Tenants ports.TenantResolver
	Logger  *slog.Logger
}

// Record appends one trail entry. Tenant resolution is best effort: an
// unresolvable actor still gets logged, with a blank tenant.
func (s Service) Record(ctx context.Context, userID string, role string, action string, ipAddress string) error {
	if strings.TrimSpace(action) == "" {
		return domainerrors.ErrInvalidAuditInput
	}

	var tenant string
	if s.Tenants != nil && strings.TrimSpace(userID) != "" {
		if resolved, err := s.Tenants.TenantOf(ctx, strings.TrimSpace(userID)); err == nil {
			tenant = resolved
		}
	}

	entry := entities.AuditEntry{
		EntryID:     uuid.NewString(),
		UserID:      strings.TrimSpace(userID),
		Role:        strings.TrimSpace(role),
		Action:      strings.TrimSpace(action),
		IPAddress:   strings.TrimSpace(ipAddress),
		ActorTenant: tenant,
		CreatedAt:   time.Now().UTC(),
	}
	return s.Repo.Append(ctx, entry)
}

// Recent is the admin trail view, newest first, capped at 100.
func (s Service) Recent(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	return s.Repo.Recent(ctx, clampLimit(limit))
}

// ComplianceByTenant is the govt view: entries whose actor belongs to the
// caller's tenant.
func (s Service) ComplianceByTenant(ctx context.Context, tenant string, limit int) ([]entities.AuditEntry, error) {
	if strings.TrimSpace(tenant) == "" {
		return nil, domainerrors.ErrInvalidAuditInput
	}
	return s.Repo.ListByTenant(ctx, strings.TrimSpace(tenant), clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxLimit {
		return defaultLimit
	}
	return limit
}
