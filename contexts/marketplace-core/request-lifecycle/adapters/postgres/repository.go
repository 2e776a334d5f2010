package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/errors"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
	"vyaparkendra/internal/platform/db"
	"vyaparkendra/internal/shared/outbox"
)

type serviceRequestModel struct {
	RequestID   string `gorm:"primaryKey;column:request_id"`
	CitizenName string `gorm:"column:citizen_name"`
	MSMEID      string `gorm:"column:msme_id"`
	AgentID     string `gorm:"column:mitra_id;index"`
	ServiceID   string `gorm:"column:service_id"`
	Tenant      string `gorm:"column:tenant;index"`
	Status      string `gorm:"column:status"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (serviceRequestModel) TableName() string { return "service_requests" }

type outboxEventModel struct {
	OutboxID     string `gorm:"primaryKey;column:outbox_id"`
	EventType    string `gorm:"column:event_type"`
	PartitionKey string `gorm:"column:partition_key"`
	Payload      []byte `gorm:"column:payload"`
	CreatedAt    time.Time
	PublishedAt  *time.Time `gorm:"column:published_at;index"`
}

func (outboxEventModel) TableName() string { return "outbox_events" }

// Repository persists service requests and their completion outbox events.
// Writes join the transaction carried on the context when one is active.
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
	return database.AutoMigrate(&serviceRequestModel{}, &outboxEventModel{})
}

func (r *Repository) CreateRequest(ctx context.Context, request entities.ServiceRequest) error {
	model := serviceRequestModel{
		RequestID:   request.RequestID,
		CitizenName: request.CitizenName,
		MSMEID:      request.MSMEID,
		AgentID:     request.AgentID,
		ServiceID:   request.ServiceID,
		Tenant:      request.Tenant,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		CompletedAt: request.CompletedAt,
	}
	return db.Session(ctx, r.db).Create(&model).Error
}

func (r *Repository) OpenRequestForUpdate(ctx context.Context, requestID string, agentID string) (entities.ServiceRequest, error) {
	var model serviceRequestModel

	err := db.Session(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ? AND mitra_id = ? AND status = ?",
			requestID, agentID, string(entities.RequestStatusInProgress)).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ServiceRequest{}, domainerrors.ErrRequestNotFound
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	return toEntity(model), nil
}

func (r *Repository) MarkCompleted(ctx context.Context, requestID string, completedAt time.Time) error {
	result := db.Session(ctx, r.db).
		Model(&serviceRequestModel{}).
		Where("request_id = ? AND status = ?", requestID, string(entities.RequestStatusInProgress)).
		Updates(map[string]any{
			"status":       string(entities.RequestStatusCompleted),
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRequestNotFound
	}
	return nil
}

func (r *Repository) ListByAgent(ctx context.Context, agentID string) ([]entities.ServiceRequest, error) {
	var models []serviceRequestModel

	err := db.Session(ctx, r.db).
		Where("mitra_id = ?", agentID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	requests := make([]entities.ServiceRequest, 0, len(models))
	for _, model := range models {
		requests = append(requests, toEntity(model))
	}
	return requests, nil
}

func (r *Repository) CountRequests(ctx context.Context) (int64, error) {
	var count int64
	err := db.Session(ctx, r.db).Model(&serviceRequestModel{}).Count(&count).Error
	return count, err
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	model := outboxEventModel{
		OutboxID:     uuid.NewString(),
		EventType:    envelope.EventType,
		PartitionKey: envelope.EntityID,
		Payload:      payload,
		CreatedAt:    envelope.OccurredAtUTC,
	}
	return db.Session(ctx, r.db).Create(&model).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	var models []outboxEventModel

	query := db.Session(ctx, r.db).
		Where("published_at IS NULL").
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(models))
	for _, model := range models {
		messages = append(messages, outbox.Message{
			OutboxID:     model.OutboxID,
			EventType:    model.EventType,
			PartitionKey: model.PartitionKey,
			Payload:      model.Payload,
			CreatedAt:    model.CreatedAt,
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return db.Session(ctx, r.db).
		Model(&outboxEventModel{}).
		Where("outbox_id = ?", outboxID).
		Update("published_at", publishedAt).Error
}

func toEntity(model serviceRequestModel) entities.ServiceRequest {
	return entities.ServiceRequest{
		RequestID:   model.RequestID,
		CitizenName: model.CitizenName,
		MSMEID:      model.MSMEID,
		AgentID:     model.AgentID,
		ServiceID:   model.ServiceID,
		Tenant:      model.Tenant,
		Status:      entities.RequestStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		CompletedAt: model.CompletedAt,
	}
}
