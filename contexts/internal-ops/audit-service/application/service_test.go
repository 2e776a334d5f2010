package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"vyaparkendra/contexts/internal-ops/audit-service/adapters/memory"
	domainerrors "vyaparkendra/contexts/internal-ops/audit-service/domain/errors"
)

type staticTenants map[string]string

func (t staticTenants) TenantOf(_ context.Context, userID string) (string, error) {
	tenant, ok := t[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return tenant, nil
}

func TestRecordDenormalizesActorTenant(t *testing.T) {
	service := Service{
		Repo:    memory.NewStore(),
		Tenants: staticTenants{"user-1": "MH"},
	}
	ctx := context.Background()

	if err := service.Record(ctx, "user-1", "mitra", "POST /marketplace/requests", "10.0.0.1"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := service.Record(ctx, "user-x", "mitra", "GET /marketplace/requests", "10.0.0.2"); err != nil {
		t.Fatalf("record with unresolvable actor failed: %v", err)
	}

	entries, err := service.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].ActorTenant != "" || entries[1].ActorTenant != "MH" {
		t.Fatalf("unexpected tenants: %q, %q", entries[0].ActorTenant, entries[1].ActorTenant)
	}
}

func TestRecentIsNewestFirstAndCapped(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		if err := service.Record(ctx, "user-1", "admin", fmt.Sprintf("action-%d", i), ""); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	entries, err := service.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(entries) != 100 {
		t.Fatalf("expected default cap of 100, got %d", len(entries))
	}
	if entries[0].Action != "action-149" {
		t.Fatalf("expected newest first, got %s", entries[0].Action)
	}

	entries, err = service.Recent(ctx, 500)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(entries) != 100 {
		t.Fatalf("expected oversized limit clamped to 100, got %d", len(entries))
	}
}

func TestComplianceByTenantFilters(t *testing.T) {
	service := Service{
		Repo:    memory.NewStore(),
		Tenants: staticTenants{"user-mh": "MH", "user-dl": "DL"},
	}
	ctx := context.Background()

	if err := service.Record(ctx, "user-mh", "mitra", "complete", ""); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := service.Record(ctx, "user-dl", "mitra", "complete", ""); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	entries, err := service.ComplianceByTenant(ctx, "MH", 10)
	if err != nil {
		t.Fatalf("compliance failed: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "user-mh" {
		t.Fatalf("unexpected compliance entries: %+v", entries)
	}

	if _, err := service.ComplianceByTenant(ctx, "  ", 10); !errors.Is(err, domainerrors.ErrInvalidAuditInput) {
		t.Fatalf("expected blank tenant rejected, got %v", err)
	}
}

func TestRecordRequiresAction(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	if err := service.Record(context.Background(), "user-1", "mitra", "", ""); !errors.Is(err, domainerrors.ErrInvalidAuditInput) {
		t.Fatalf("expected blank action rejected, got %v", err)
	}
}
