package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vyaparkendra/contexts/marketplace-core/commission-ledger/application"
	httptransport "vyaparkendra/contexts/marketplace-core/commission-ledger/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) WalletHandler(ctx context.Context, agentID string) (httptransport.WalletResponse, error) {
	wallet, err := h.Service.Wallet(ctx, agentID)
	if err != nil {
		return httptransport.WalletResponse{}, err
	}
	return httptransport.WalletResponse{
		Balance:     wallet.Balance,
		TotalEarned: wallet.TotalEarned,
	}, nil
}

func (h Handler) BalanceHandler(ctx context.Context, agentID string) (httptransport.BalanceResponse, error) {
	breakdown, err := h.Service.Balance(ctx, agentID)
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}
	return httptransport.BalanceResponse{
		TotalCredits: breakdown.TotalCredits,
		TotalDebits:  breakdown.TotalDebits,
		Net:          breakdown.Net,
	}, nil
}

func (h Handler) StatementHandler(ctx context.Context, agentID string) (httptransport.StatementResponse, error) {
	items, err := h.Service.ListEntries(ctx, agentID)
	if err != nil {
		return httptransport.StatementResponse{}, err
	}
	resp := httptransport.StatementResponse{
		Status: "success",
		Data:   make([]httptransport.LedgerEntryDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, httptransport.LedgerEntryDTO{
			EntryID:     item.EntryID,
			Amount:      item.Amount,
			Kind:        string(item.Kind),
			ReferenceID: item.ReferenceID,
			CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) TotalCreditedHandler(ctx context.Context) (float64, error) {
	return h.Service.TotalCredited(ctx)
}
