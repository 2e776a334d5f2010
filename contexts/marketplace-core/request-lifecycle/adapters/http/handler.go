package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vyaparkendra/contexts/marketplace-core/request-lifecycle/application"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
	httptransport "vyaparkendra/contexts/marketplace-core/request-lifecycle/transport/http"
)

type Handler struct {
	Service *application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateRequestHandler(ctx context.Context, body httptransport.CreateRequestRequest, agentID string, tenant string) (httptransport.CreateRequestResponse, error) {
	request, err := h.Service.CreateRequest(ctx, ports.CreateRequestInput{
		CitizenName: body.CitizenName,
		MSMEID:      body.MSMEID,
		ServiceID:   body.ServiceID,
		AgentID:     agentID,
		Tenant:      tenant,
	})
	if err != nil {
		return httptransport.CreateRequestResponse{}, err
	}
	return httptransport.CreateRequestResponse{
		Status:    "success",
		Message:   "Service request created",
		RequestID: request.RequestID,
	}, nil
}

func (h Handler) CompleteRequestHandler(ctx context.Context, requestID string, agentID string) (httptransport.CompleteRequestResponse, error) {
	result, err := h.Service.CompleteRequest(ctx, requestID, agentID)
	if err != nil {
		return httptransport.CompleteRequestResponse{}, err
	}
	return httptransport.CompleteRequestResponse{
		Status:           "success",
		Message:          "Request completed and commission credited",
		RequestID:        result.RequestID,
		CommissionEarned: result.CommissionEarned,
		CompletedAt:      result.CompletedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) ListRequestsHandler(ctx context.Context, agentID string) (httptransport.ListRequestsResponse, error) {
	requests, err := h.Service.ListByAgent(ctx, agentID)
	if err != nil {
		return httptransport.ListRequestsResponse{}, err
	}

	resp := httptransport.ListRequestsResponse{
		Status: "success",
		Data:   make([]httptransport.ServiceRequestDTO, 0, len(requests)),
	}
	for _, request := range requests {
		dto := httptransport.ServiceRequestDTO{
			RequestID:   request.RequestID,
			CitizenName: request.CitizenName,
			MSMEID:      request.MSMEID,
			MitraID:     request.AgentID,
			ServiceID:   request.ServiceID,
			Tenant:      request.Tenant,
			Status:      string(request.Status),
			CreatedAt:   request.CreatedAt.UTC().Format(time.RFC3339),
		}
		if request.CompletedAt != nil {
			dto.CompletedAt = request.CompletedAt.UTC().Format(time.RFC3339)
		}
		resp.Data = append(resp.Data, dto)
	}
	return resp, nil
}
