package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vyaparkendra/contexts/marketplace-core/state-analytics/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/state-analytics/domain/errors"
	"vyaparkendra/internal/platform/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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
	return database.AutoMigrate(&stateAnalyticsModel{})
}

// ApplyDelta upserts the state row in one statement: first activity for a
// state inserts the seeded row, every other bump lands in the conflict arm
// and adds its deltas to the existing row. The conflict update takes the
// row lock, so racing bumps serialize and sum.
func (r *Repository) ApplyDelta(ctx context.Context, state string, revenueDelta float64, requestDelta int64, now time.Time) error {
	row := stateAnalyticsModel{
		AnalyticsID:   uuid.NewString(),
		State:         state,
		TotalRevenue:  revenueDelta,
		TotalRequests: requestDelta,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return db.Session(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "state"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total_revenue":  gorm.Expr("total_revenue + ?", revenueDelta),
				"total_requests": gorm.Expr("total_requests + ?", requestDelta),
				"updated_at":     now,
			}),
		}).
		Create(&row).
		Error
}

func (r *Repository) Get(ctx context.Context, state string) (entities.StateAnalytics, error) {
	var row stateAnalyticsModel
	err := db.Session(ctx, r.db).
		Where("state = ?", state).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.StateAnalytics{}, domainerrors.ErrStateNotTracked
		}
		return entities.StateAnalytics{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.StateAnalytics, error) {
	var rows []stateAnalyticsModel
	err := db.Session(ctx, r.db).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.StateAnalytics, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type stateAnalyticsModel struct {
	AnalyticsID   string    `gorm:"column:analytics_id;primaryKey"`
	State         string    `gorm:"column:state;uniqueIndex"`
	TotalRevenue  float64   `gorm:"column:total_revenue"`
	TotalRequests int64     `gorm:"column:total_requests"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (stateAnalyticsModel) TableName() string { return "state_analytics" }

func (m stateAnalyticsModel) toEntity() entities.StateAnalytics {
	return entities.StateAnalytics{
		AnalyticsID:   m.AnalyticsID,
		State:         m.State,
		TotalRevenue:  m.TotalRevenue,
		TotalRequests: m.TotalRequests,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
