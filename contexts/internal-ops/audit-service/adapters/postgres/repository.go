package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"vyaparkendra/contexts/internal-ops/audit-service/domain/entities"
	"vyaparkendra/internal/platform/db"
)

type auditEntryModel struct {
	EntryID     string `gorm:"primaryKey;column:entry_id"`
	UserID      string `gorm:"column:user_id;index"`
	Role        string `gorm:"column:role"`
	Action      string `gorm:"column:action"`
	IPAddress   string `gorm:"column:ip_address"`
	ActorTenant string `gorm:"column:actor_tenant;index"`
	CreatedAt   time.Time
}

func (auditEntryModel) TableName() string { return "audit_entries" }

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
	return database.AutoMigrate(&auditEntryModel{})
}

func (r *Repository) Append(ctx context.Context, entry entities.AuditEntry) error {
	model := auditEntryModel{
		EntryID:     entry.EntryID,
		UserID:      entry.UserID,
		Role:        entry.Role,
		Action:      entry.Action,
		IPAddress:   entry.IPAddress,
		ActorTenant: entry.ActorTenant,
		CreatedAt:   entry.CreatedAt,
	}
	return db.Session(ctx, r.db).Create(&model).Error
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	var models []auditEntryModel

	err := db.Session(ctx, r.db).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func (r *Repository) ListByTenant(ctx context.Context, tenant string, limit int) ([]entities.AuditEntry, error) {
	var models []auditEntryModel

	err := db.Session(ctx, r.db).
		Where("actor_tenant = ?", tenant).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func toEntities(models []auditEntryModel) []entities.AuditEntry {
	entries := make([]entities.AuditEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, entities.AuditEntry{
			EntryID:     model.EntryID,
			UserID:      model.UserID,
			Role:        model.Role,
			Action:      model.Action,
			IPAddress:   model.IPAddress,
			ActorTenant: model.ActorTenant,
			CreatedAt:   model.CreatedAt,
		})
	}
	return entries
}
