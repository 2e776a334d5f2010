package ports

import (
	"context"

	"vyaparkendra/contexts/marketplace-core/service-catalog/domain/entities"
)

type AddServiceInput struct {
	Name            string
	Category        string
	Price           float64
	MitraCommission float64
	Tenant          string
}

type Repository interface {
	CreateService(ctx context.Context, service entities.Service) error
	GetService(ctx context.Context, serviceID string) (entities.Service, error)
	ListByTenant(ctx context.Context, tenant string) ([]entities.Service, error)
}
