package httpadapter

import (
	"context"
	"log/slog"

	"vyaparkendra/contexts/marketplace-core/service-catalog/application"
	"vyaparkendra/contexts/marketplace-core/service-catalog/ports"
	httptransport "vyaparkendra/contexts/marketplace-core/service-catalog/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AddServiceHandler(
	ctx context.Context,
	req httptransport.AddServiceRequest,
) (httptransport.AddServiceResponse, error) {
	service, err := h.Service.AddService(ctx, ports.AddServiceInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		MitraCommission: req.MitraCommission,
		Tenant:          req.Tenant,
	})
	if err != nil {
		return httptransport.AddServiceResponse{}, err
	}
	return httptransport.AddServiceResponse{
		Message:   "Service added successfully",
		ServiceID: service.ServiceID,
	}, nil
}

func (h Handler) ListServicesHandler(
	ctx context.Context,
	tenant string,
) (httptransport.ListServicesResponse, error) {
	items, err := h.Service.ListByTenant(ctx, tenant)
	if err != nil {
		return httptransport.ListServicesResponse{}, err
	}
	resp := httptransport.ListServicesResponse{
		Status: "success",
		Data:   make([]httptransport.ServiceDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, httptransport.ServiceDTO{
			ID:       item.ServiceID,
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
		})
	}
	return resp, nil
}
