package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"vyaparkendra/contexts/marketplace-core/service-catalog/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/service-catalog/domain/errors"
	"vyaparkendra/internal/platform/db"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(database *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: database, logger: logger}
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(&serviceModel{})
}

func (r *Repository) CreateService(ctx context.Context, service entities.Service) error {
	row := serviceModelFromEntity(service)
	return db.Session(ctx, r.db).Create(&row).Error
}

func (r *Repository) GetService(ctx context.Context, serviceID string) (entities.Service, error) {
	var row serviceModel
	err := db.Session(ctx, r.db).
		Where("service_id = ?", serviceID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Service{}, domainerrors.ErrServiceNotFound
		}
		return entities.Service{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenant string) ([]entities.Service, error) {
	var rows []serviceModel
	err := db.Session(ctx, r.db).
		Where("tenant = ?", tenant).
		Order("name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Service, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type serviceModel struct {
	ServiceID       string  `gorm:"column:service_id;primaryKey"`
	Name            string  `gorm:"column:name"`
	Category        string  `gorm:"column:category"`
	Price           float64 `gorm:"column:price"`
	MitraCommission float64 `gorm:"column:mitra_commission"`
	Tenant          string  `gorm:"column:tenant;index"`
}

func (serviceModel) TableName() string { return "services" }

func serviceModelFromEntity(service entities.Service) serviceModel {
	return serviceModel{
		ServiceID:       service.ServiceID,
		Name:            service.Name,
		Category:        service.Category,
		Price:           service.Price,
		MitraCommission: service.MitraCommission,
		Tenant:          service.Tenant,
	}
}

func (m serviceModel) toEntity() entities.Service {
	return entities.Service{
		ServiceID:       m.ServiceID,
		Name:            m.Name,
		Category:        m.Category,
		Price:           m.Price,
		MitraCommission: m.MitraCommission,
		Tenant:          m.Tenant,
	}
}
