package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"vyaparkendra/contexts/marketplace-core/commission-ledger/domain/entities"
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
	return database.AutoMigrate(&ledgerEntryModel{})
}

func (r *Repository) AppendEntry(ctx context.Context, entry entities.LedgerEntry) error {
	row := ledgerEntryModelFromEntity(entry)
	return db.Session(ctx, r.db).Create(&row).Error
}

func (r *Repository) AgentTotals(ctx context.Context, agentID string) (float64, float64, error) {
	type kindTotal struct {
		Kind  string
		Total float64
	}
	var rows []kindTotal
	err := db.Session(ctx, r.db).
		Model(&ledgerEntryModel{}).
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Where("agent_id = ?", agentID).
		Group("kind").
		Scan(&rows).
		Error
	if err != nil {
		return 0, 0, err
	}

	var credits, debits float64
	for _, row := range rows {
		switch entities.EntryKind(row.Kind) {
		case entities.EntryKindCredit:
			credits = row.Total
		case entities.EntryKindDebit:
			debits = row.Total
		}
	}
	return credits, debits, nil
}

func (r *Repository) ListByAgent(ctx context.Context, agentID string) ([]entities.LedgerEntry, error) {
	var rows []ledgerEntryModel
	err := db.Session(ctx, r.db).
		Where("agent_id = ?", agentID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) TotalCredits(ctx context.Context) (float64, error) {
	var total float64
	err := db.Session(ctx, r.db).
		Model(&ledgerEntryModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("kind = ?", string(entities.EntryKindCredit)).
		Scan(&total).
		Error
	return total, err
}

type ledgerEntryModel struct {
	EntryID     string    `gorm:"column:entry_id;primaryKey"`
	AgentID     string    `gorm:"column:agent_id;index"`
	Amount      float64   `gorm:"column:amount"`
	Kind        string    `gorm:"column:kind"`
	ReferenceID string    `gorm:"column:reference_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (ledgerEntryModel) TableName() string { return "ledger_entries" }

func ledgerEntryModelFromEntity(entry entities.LedgerEntry) ledgerEntryModel {
	return ledgerEntryModel{
		EntryID:     entry.EntryID,
		AgentID:     entry.AgentID,
		Amount:      entry.Amount,
		Kind:        string(entry.Kind),
		ReferenceID: entry.ReferenceID,
		CreatedAt:   entry.CreatedAt,
	}
}

func (m ledgerEntryModel) toEntity() entities.LedgerEntry {
	return entities.LedgerEntry{
		EntryID:     m.EntryID,
		AgentID:     m.AgentID,
		Amount:      m.Amount,
		Kind:        entities.EntryKind(m.Kind),
		ReferenceID: m.ReferenceID,
		CreatedAt:   m.CreatedAt,
	}
}
