package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vyaparkendra/contexts/marketplace-core/commission-ledger/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/commission-ledger/domain/errors"
	"vyaparkendra/contexts/marketplace-core/commission-ledger/ports"

	"github.com/google/uuid"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// RecordCredit appends one immutable credit entry. Joins the caller's
// transaction scope when one is in flight.
func (s Service) RecordCredit(ctx context.Context, agentID string, amount float64, referenceID string) error {
	return s.record(ctx, agentID, amount, referenceID, entities.EntryKindCredit)
}

// RecordDebit appends one immutable debit entry.
func (s Service) RecordDebit(ctx context.Context, agentID string, amount float64, referenceID string) error {
	return s.record(ctx, agentID, amount, referenceID, entities.EntryKindDebit)
}

// Zero amounts are legal entries: a completed request always gets its
// credit line even when the service carries no commission.
func (s Service) record(ctx context.Context, agentID string, amount float64, referenceID string, kind entities.EntryKind) error {
	if strings.TrimSpace(agentID) == "" || amount < 0 {
		return domainerrors.ErrInvalidEntryInput
	}

	entry := entities.LedgerEntry{
		EntryID:     uuid.NewString(),
		AgentID:     strings.TrimSpace(agentID),
		Amount:      amount,
		Kind:        kind,
		ReferenceID: strings.TrimSpace(referenceID),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.AppendEntry(ctx, entry); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("ledger entry appended",
		"event", "ledger_entry_appended",
		"module", "marketplace-core/commission-ledger",
		"layer", "application",
		"entry_id", entry.EntryID,
		"agent_id", entry.AgentID,
		"kind", string(kind),
		"amount", amount,
	)
	return nil
}

// Balance folds every committed entry for the agent. There is no cached
// balance anywhere to drift from the ledger.
func (s Service) Balance(ctx context.Context, agentID string) (ports.BalanceBreakdown, error) {
	if strings.TrimSpace(agentID) == "" {
		return ports.BalanceBreakdown{}, domainerrors.ErrInvalidEntryInput
	}
	credits, debits, err := s.Repo.AgentTotals(ctx, strings.TrimSpace(agentID))
	if err != nil {
		return ports.BalanceBreakdown{}, err
	}
	return ports.BalanceBreakdown{
		TotalCredits: credits,
		TotalDebits:  debits,
		Net:          credits - debits,
	}, nil
}

func (s Service) Wallet(ctx context.Context, agentID string) (ports.WalletSummary, error) {
	breakdown, err := s.Balance(ctx, agentID)
	if err != nil {
		return ports.WalletSummary{}, err
	}
	return ports.WalletSummary{
		Balance:     breakdown.Net,
		TotalEarned: breakdown.TotalCredits,
	}, nil
}

func (s Service) ListEntries(ctx context.Context, agentID string) ([]entities.LedgerEntry, error) {
	if strings.TrimSpace(agentID) == "" {
		return nil, domainerrors.ErrInvalidEntryInput
	}
	return s.Repo.ListByAgent(ctx, strings.TrimSpace(agentID))
}

// TotalCredited is the platform-wide credit sum used by the admin rollup.
func (s Service) TotalCredited(ctx context.Context) (float64, error) {
	return s.Repo.TotalCredits(ctx)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
