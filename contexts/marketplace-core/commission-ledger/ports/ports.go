package ports

import (
	"context"

	"vyaparkendra/contexts/marketplace-core/commission-ledger/domain/entities"
)

// BalanceBreakdown is a pure aggregation over an agent's ledger entries.
type BalanceBreakdown struct {
	TotalCredits float64
	TotalDebits  float64
	Net          float64
}

// WalletSummary is the mitra-facing view derived from the same fold.
type WalletSummary struct {
	Balance     float64
	TotalEarned float64
}

type Repository interface {
	AppendEntry(ctx context.Context, entry entities.LedgerEntry) error
	AgentTotals(ctx context.Context, agentID string) (totalCredits float64, totalDebits float64, err error)
	ListByAgent(ctx context.Context, agentID string) ([]entities.LedgerEntry, error)
	TotalCredits(ctx context.Context) (float64, error)
}
