package application

import (
	"context"
	"errors"
	"testing"

	"vyaparkendra/contexts/marketplace-core/commission-ledger/adapters/memory"
	domainerrors "vyaparkendra/contexts/marketplace-core/commission-ledger/domain/errors"
)

func TestBalanceFoldsAllEntries(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if err := service.RecordCredit(ctx, "agent-1", 100, "req-1"); err != nil {
		t.Fatalf("first credit failed: %v", err)
	}
	if err := service.RecordCredit(ctx, "agent-1", 50, "req-2"); err != nil {
		t.Fatalf("second credit failed: %v", err)
	}
	if err := service.RecordDebit(ctx, "agent-1", 30, "payout-1"); err != nil {
		t.Fatalf("debit failed: %v", err)
	}

	breakdown, err := service.Balance(ctx, "agent-1")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if breakdown.TotalCredits != 150 || breakdown.TotalDebits != 30 || breakdown.Net != 120 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}

	wallet, err := service.Wallet(ctx, "agent-1")
	if err != nil {
		t.Fatalf("wallet failed: %v", err)
	}
	if wallet.Balance != 120 || wallet.TotalEarned != 150 {
		t.Fatalf("unexpected wallet: %+v", wallet)
	}
}

func TestWalletIsDerivedNotStored(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	wallet, err := service.Wallet(ctx, "agent-empty")
	if err != nil {
		t.Fatalf("wallet for empty ledger failed: %v", err)
	}
	if wallet.Balance != 0 || wallet.TotalEarned != 0 {
		t.Fatalf("expected zero wallet before any entries, got %+v", wallet)
	}

	if err := service.RecordCredit(ctx, "agent-empty", 75, "req-9"); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	wallet, err = service.Wallet(ctx, "agent-empty")
	if err != nil {
		t.Fatalf("wallet after credit failed: %v", err)
	}
	if wallet.Balance != 75 || wallet.TotalEarned != 75 {
		t.Fatalf("wallet did not reflect committed entry: %+v", wallet)
	}
}

func TestBalanceIsolatedPerAgent(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if err := service.RecordCredit(ctx, "agent-a", 40, "req-a"); err != nil {
		t.Fatalf("credit a failed: %v", err)
	}
	if err := service.RecordCredit(ctx, "agent-b", 60, "req-b"); err != nil {
		t.Fatalf("credit b failed: %v", err)
	}

	breakdown, err := service.Balance(ctx, "agent-a")
	if err != nil {
		t.Fatalf("balance failed: %v", err)
	}
	if breakdown.Net != 40 {
		t.Fatalf("agent-a balance picked up foreign entries: %+v", breakdown)
	}

	total, err := service.TotalCredited(ctx)
	if err != nil {
		t.Fatalf("total credited failed: %v", err)
	}
	if total != 100 {
		t.Fatalf("expected platform total 100, got %v", total)
	}
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if err := service.RecordCredit(ctx, "", 10, "req-1"); !errors.Is(err, domainerrors.ErrInvalidEntryInput) {
		t.Fatalf("expected invalid input for blank agent, got %v", err)
	}
	if err := service.RecordCredit(ctx, "agent-1", -10, "req-1"); !errors.Is(err, domainerrors.ErrInvalidEntryInput) {
		t.Fatalf("expected invalid input for negative credit, got %v", err)
	}
	if err := service.RecordDebit(ctx, "agent-1", -5, "req-1"); !errors.Is(err, domainerrors.ErrInvalidEntryInput) {
		t.Fatalf("expected invalid input for negative debit, got %v", err)
	}
}

func TestZeroAmountCreditIsRecorded(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if err := service.RecordCredit(ctx, "agent-1", 0, "req-1"); err != nil {
		t.Fatalf("zero credit failed: %v", err)
	}

	entries, err := service.ListEntries(ctx, "agent-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Amount != 0 || entries[0].ReferenceID != "req-1" {
		t.Fatalf("expected one zero entry referencing the request, got %+v", entries)
	}

	wallet, err := service.Wallet(ctx, "agent-1")
	if err != nil {
		t.Fatalf("wallet failed: %v", err)
	}
	if wallet.Balance != 0 || wallet.TotalEarned != 0 {
		t.Fatalf("zero entry moved the wallet: %+v", wallet)
	}
}
