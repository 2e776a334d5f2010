package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/errors"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
)

const completedEventType = "marketplace.request.completed"

// Service owns the request lifecycle: intake of new service requests and
// the atomic completion settlement that credits the agent's commission and
// rolls the state counters forward in a single unit of work.
type Service struct {
	Requests  ports.Repository
	Catalog   ports.ServiceCatalog
	Ledger    ports.LedgerRecorder
	Analytics ports.AnalyticsBumper
	UoW       ports.UnitOfWork
	Outbox    ports.OutboxWriter
	Clock     ports.Clock
	IDGen     ports.IDGenerator

	DisableCompletionEventEmission bool

	Logger *slog.Logger
}

// CreateRequest registers an in_progress request and bumps the tenant's
// request counter. The counter moves at creation time; revenue only moves
// at completion.
func (s *Service) CreateRequest(ctx context.Context, input ports.CreateRequestInput) (entities.ServiceRequest, error) {
	if strings.TrimSpace(input.ServiceID) == "" ||
		strings.TrimSpace(input.AgentID) == "" ||
		strings.TrimSpace(input.Tenant) == "" {
		return entities.ServiceRequest{}, domainerrors.ErrInvalidRequestInput
	}

	requestID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	request := entities.ServiceRequest{
		RequestID:   requestID,
		CitizenName: strings.TrimSpace(input.CitizenName),
		MSMEID:      strings.TrimSpace(input.MSMEID),
		AgentID:     strings.TrimSpace(input.AgentID),
		ServiceID:   strings.TrimSpace(input.ServiceID),
		Tenant:      strings.TrimSpace(input.Tenant),
		Status:      entities.RequestStatusInProgress,
		CreatedAt:   s.Clock.Now().UTC(),
	}

	err = s.UoW.InTx(ctx, func(ctx context.Context) error {
		if err := s.Requests.CreateRequest(ctx, request); err != nil {
			return err
		}
		return s.Analytics.Bump(ctx, request.Tenant, 0, 1)
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	ResolveLogger(s.Logger).Info("service request created",
		"event", "request_created",
		"module", "marketplace-core/request-lifecycle",
		"layer", "application",
		"request_id", request.RequestID,
		"tenant", request.Tenant,
	)

	return request, nil
}

// CompleteRequest settles a request owned by agentID. The status flip, the
// commission credit and the analytics revenue bump commit or roll back
// together; a vanished catalog entry aborts with ErrServiceMissing and the
// request stays in_progress.
func (s *Service) CompleteRequest(ctx context.Context, requestID string, agentID string) (ports.CompletionResult, error) {
	if strings.TrimSpace(requestID) == "" || strings.TrimSpace(agentID) == "" {
		return ports.CompletionResult{}, domainerrors.ErrInvalidRequestInput
	}

	var result ports.CompletionResult

	err := s.UoW.InTx(ctx, func(ctx context.Context) error {
		request, err := s.Requests.OpenRequestForUpdate(ctx, requestID, agentID)
		if err != nil {
			return err
		}

		priced, err := s.Catalog.PricedService(ctx, request.ServiceID)
		if err != nil {
			return err
		}

		if err := s.Ledger.RecordCredit(ctx, request.AgentID, priced.MitraCommission, request.RequestID); err != nil {
			return err
		}

		if err := s.Analytics.Bump(ctx, request.Tenant, priced.Price, 0); err != nil {
			return err
		}

		completedAt := s.Clock.Now().UTC()
		if err := s.Requests.MarkCompleted(ctx, request.RequestID, completedAt); err != nil {
			return err
		}

		result = ports.CompletionResult{
			RequestID:        request.RequestID,
			CommissionEarned: priced.MitraCommission,
			CompletedAt:      completedAt,
		}

		return s.appendCompletedEvent(ctx, request, priced, completedAt)
	})
	if err != nil {
		return ports.CompletionResult{}, err
	}

	ResolveLogger(s.Logger).Info("service request completed",
		"event", "request_completed",
		"module", "marketplace-core/request-lifecycle",
		"layer", "application",
		"request_id", result.RequestID,
		"agent_id", agentID,
		"commission", result.CommissionEarned,
	)

	return result, nil
}

func (s *Service) appendCompletedEvent(ctx context.Context, request entities.ServiceRequest, priced ports.PricedService, completedAt time.Time) error {
	if s.Outbox == nil || s.DisableCompletionEventEmission {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"request_id": request.RequestID,
		"mitra_id":   request.AgentID,
		"service_id": request.ServiceID,
		"tenant":     request.Tenant,
		"price":      priced.Price,
		"commission": priced.MitraCommission,
	})
	if err != nil {
		return err
	}

	return s.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:        uuid.NewString(),
		EventType:      completedEventType,
		SourceService:  "request-lifecycle",
		OccurredAtUTC:  completedAt,
		CorrelationID:  request.RequestID,
		EntityType:     "service_request",
		EntityID:       request.RequestID,
		PayloadVersion: 1,
		Payload:        json.RawMessage(payload),
	})
}

// ListByAgent returns the agent's requests in creation order.
func (s *Service) ListByAgent(ctx context.Context, agentID string) ([]entities.ServiceRequest, error) {
	if strings.TrimSpace(agentID) == "" {
		return nil, domainerrors.ErrInvalidRequestInput
	}
	return s.Requests.ListByAgent(ctx, agentID)
}

// CountRequests reports the platform-wide request count for rollups.
func (s *Service) CountRequests(ctx context.Context) (int64, error) {
	return s.Requests.CountRequests(ctx)
}

func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
