package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/errors"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
	"vyaparkendra/internal/shared/outbox"
)

type outboxRecord struct {
	message     outbox.Message
	publishedAt *time.Time
}

// Store is the in-memory request repository. It doubles as the outbox
// store so dev-mode wiring stays single-process.
type Store struct {
	mu       sync.Mutex
	requests map[string]entities.ServiceRequest
	order    []string
	outbox   []outboxRecord
}

func NewStore() *Store {
	return &Store{requests: make(map[string]entities.ServiceRequest)}
}

func (s *Store) CreateRequest(_ context.Context, request entities.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests[request.RequestID] = request
	s.order = append(s.order, request.RequestID)
	return nil
}

func (s *Store) OpenRequestForUpdate(_ context.Context, requestID string, agentID string) (entities.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok || request.AgentID != agentID || request.Status != entities.RequestStatusInProgress {
		return entities.ServiceRequest{}, domainerrors.ErrRequestNotFound
	}
	return request, nil
}

func (s *Store) MarkCompleted(_ context.Context, requestID string, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok || request.Status != entities.RequestStatusInProgress {
		return domainerrors.ErrRequestNotFound
	}

	request.Status = entities.RequestStatusCompleted
	request.CompletedAt = &completedAt
	s.requests[requestID] = request
	return nil
}

func (s *Store) ListByAgent(_ context.Context, agentID string) ([]entities.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var requests []entities.ServiceRequest
	for _, id := range s.order {
		if s.requests[id].AgentID == agentID {
			requests = append(requests, s.requests[id])
		}
	}
	return requests, nil
}

func (s *Store) CountRequests(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.requests)), nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.outbox = append(s.outbox, outboxRecord{message: outbox.Message{
		OutboxID:     uuid.NewString(),
		EventType:    envelope.EventType,
		PartitionKey: envelope.EntityID,
		Payload:      payload,
		CreatedAt:    envelope.OccurredAtUTC,
	}})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]outbox.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []outbox.Message
	for _, record := range s.outbox {
		if record.publishedAt != nil {
			continue
		}
		pending = append(pending, record.message)
		if limit > 0 && len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].publishedAt = &publishedAt
			return nil
		}
	}
	return nil
}

type requestsSnapshot struct {
	requests map[string]entities.ServiceRequest
	order    []string
	outbox   []outboxRecord
}

func (s *Store) Snapshot() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make(map[string]entities.ServiceRequest, len(s.requests))
	for id, request := range s.requests {
		requests[id] = request
	}
	return requestsSnapshot{
		requests: requests,
		order:    append([]string(nil), s.order...),
		outbox:   append([]outboxRecord(nil), s.outbox...),
	}
}

func (s *Store) Restore(snapshot any) {
	previous, ok := snapshot.(requestsSnapshot)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = previous.requests
	s.order = previous.order
	s.outbox = previous.outbox
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator mints v4 request ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
