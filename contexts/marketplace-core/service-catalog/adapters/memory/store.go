package memory

import (
	"context"
	"sync"

	"vyaparkendra/contexts/marketplace-core/service-catalog/domain/entities"
	domainerrors "vyaparkendra/contexts/marketplace-core/service-catalog/domain/errors"
)

type Store struct {
	mu       sync.RWMutex
	services map[string]entities.Service
	order    []string
}

func NewStore() *Store {
	return &Store{
		services: make(map[string]entities.Service),
	}
}

func (s *Store) CreateService(_ context.Context, service entities.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if service.ServiceID == "" {
		return domainerrors.ErrInvalidServiceInput
	}
	if _, exists := s.services[service.ServiceID]; !exists {
		s.order = append(s.order, service.ServiceID)
	}
	s.services[service.ServiceID] = service
	return nil
}

func (s *Store) GetService(_ context.Context, serviceID string) (entities.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	service, ok := s.services[serviceID]
	if !ok {
		return entities.Service{}, domainerrors.ErrServiceNotFound
	}
	return service, nil
}

func (s *Store) ListByTenant(_ context.Context, tenant string) ([]entities.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Service, 0)
	for _, id := range s.order {
		if service := s.services[id]; service.Tenant == tenant {
			items = append(items, service)
		}
	}
	return items, nil
}

// Remove deletes a service outright. Catalog rows are immutable reference
// data in production; this exists so tests can simulate a vanished service
// at completion time.
func (s *Store) Remove(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.services, serviceID)
	filtered := s.order[:0]
	for _, id := range s.order {
		if id != serviceID {
			filtered = append(filtered, id)
		}
	}
	s.order = filtered
}
