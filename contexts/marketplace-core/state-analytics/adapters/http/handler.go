package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vyaparkendra/contexts/marketplace-core/state-analytics/application"
	domainerrors "vyaparkendra/contexts/marketplace-core/state-analytics/domain/errors"
	httptransport "vyaparkendra/contexts/marketplace-core/state-analytics/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// GetStateHandler maps an untracked state to a zero row: no activity is a
// valid answer for oversight callers, not an error.
func (h Handler) GetStateHandler(ctx context.Context, state string) (httptransport.StateAnalyticsResponse, error) {
	record, err := h.Service.Get(ctx, state)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStateNotTracked) {
			return httptransport.StateAnalyticsResponse{
				Status: "success",
				Data:   httptransport.StateAnalyticsDTO{State: state},
			}, nil
		}
		return httptransport.StateAnalyticsResponse{}, err
	}
	return httptransport.StateAnalyticsResponse{
		Status: "success",
		Data: httptransport.StateAnalyticsDTO{
			State:         record.State,
			TotalRevenue:  record.TotalRevenue,
			TotalRequests: record.TotalRequests,
			LastUpdated:   record.UpdatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

func (h Handler) ListAllHandler(ctx context.Context) (httptransport.ListStateAnalyticsResponse, error) {
	items, err := h.Service.ListAll(ctx)
	if err != nil {
		return httptransport.ListStateAnalyticsResponse{}, err
	}
	resp := httptransport.ListStateAnalyticsResponse{
		Status: "success",
		Data:   make([]httptransport.StateAnalyticsDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, httptransport.StateAnalyticsDTO{
			State:         item.State,
			TotalRevenue:  item.TotalRevenue,
			TotalRequests: item.TotalRequests,
			LastUpdated:   item.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}
