package application

import (
	"context"
	"log/slog"
	"strings"

	"vyaparkendra/contexts/marketplace-core/service-catalog/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/service-catalog/domain/errors"
	"vyaparkendra/contexts/marketplace-core/service-catalog/ports"

	"github.com/google/uuid"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) AddService(ctx context.Context, input ports.AddServiceInput) (entities.Service, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Tenant) == "" ||
		input.Price < 0 ||
		input.MitraCommission < 0 {
		return entities.Service{}, domainerrors.ErrInvalidServiceInput
	}

	service := entities.Service{
		ServiceID:       uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Category:        strings.TrimSpace(input.Category),
		Price:           input.Price,
		MitraCommission: input.MitraCommission,
		Tenant:          strings.TrimSpace(input.Tenant),
	}
	if err := s.Repo.CreateService(ctx, service); err != nil {
		return entities.Service{}, err
	}

	resolveLogger(s.Logger).Info("service added to catalog",
		"event", "catalog_service_added",
		"module", "marketplace-core/service-catalog",
		"layer", "application",
		"service_id", service.ServiceID,
		"tenant", service.Tenant,
	)
	return service, nil
}

func (s Service) GetService(ctx context.Context, serviceID string) (entities.Service, error) {
	if strings.TrimSpace(serviceID) == "" {
		return entities.Service{}, domainerrors.ErrInvalidServiceInput
	}
	return s.Repo.GetService(ctx, strings.TrimSpace(serviceID))
}

func (s Service) ListByTenant(ctx context.Context, tenant string) ([]entities.Service, error) {
	if strings.TrimSpace(tenant) == "" {
		return nil, domainerrors.ErrInvalidServiceInput
	}
	return s.Repo.ListByTenant(ctx, strings.TrimSpace(tenant))
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
