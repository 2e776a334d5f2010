package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vyaparkendra/contexts/internal-ops/audit-service/application"
	"vyaparkendra/contexts/internal-ops/audit-service/domain/entities"
	httptransport "vyaparkendra/contexts/internal-ops/audit-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RecentHandler(ctx context.Context, limit int) (httptransport.ListAuditEntriesResponse, error) {
	entries, err := h.Service.Recent(ctx, limit)
	if err != nil {
		return httptransport.ListAuditEntriesResponse{}, err
	}
	return toResponse(entries), nil
}

func (h Handler) ComplianceHandler(ctx context.Context, tenant string, limit int) (httptransport.ListAuditEntriesResponse, error) {
	entries, err := h.Service.ComplianceByTenant(ctx, tenant, limit)
	if err != nil {
		return httptransport.ListAuditEntriesResponse{}, err
	}
	return toResponse(entries), nil
}

func toResponse(entries []entities.AuditEntry) httptransport.ListAuditEntriesResponse {
	resp := httptransport.ListAuditEntriesResponse{
		Status: "success",
		Data:   make([]httptransport.AuditEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Data = append(resp.Data, httptransport.AuditEntryDTO{
			EntryID:     entry.EntryID,
			UserID:      entry.UserID,
			Role:        entry.Role,
			Action:      entry.Action,
			IPAddress:   entry.IPAddress,
			ActorTenant: entry.ActorTenant,
			CreatedAt:   entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
