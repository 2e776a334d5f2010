package memory

import (
	"context"
	"sync"
	"time"

	"vyaparkendra/contexts/lending/loan-service/domain/entities"
	domainerrors "vyaparkendra/contexts/lending/loan-service/domain/errors"
)

type Store struct {
	mu       sync.RWMutex
	loans    map[string]entities.LoanApplication
	order    []string
	partners []entities.NBFCPartner
}

func NewStore() *Store {
	return &Store{loans: make(map[string]entities.LoanApplication)}
}

func (s *Store) CreateLoan(_ context.Context, loan entities.LoanApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loans[loan.LoanID] = loan
	s.order = append(s.order, loan.LoanID)
	return nil
}

func (s *Store) ListByMitra(_ context.Context, mitraID string) ([]entities.LoanApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.LoanApplication, 0)
	for _, id := range s.order {
		if s.loans[id].MitraID == mitraID {
			items = append(items, s.loans[id])
		}
	}
	return items, nil
}

func (s *Store) ListByStatus(_ context.Context, status entities.LoanStatus) ([]entities.LoanApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.LoanApplication, 0)
	for _, id := range s.order {
		if s.loans[id].Status == status {
			items = append(items, s.loans[id])
		}
	}
	return items, nil
}

func (s *Store) UpdateStatus(_ context.Context, loanID string, status entities.LoanStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return domainerrors.ErrLoanNotFound
	}
	loan.Status = status
	loan.UpdatedAt = time.Now().UTC()
	s.loans[loanID] = loan
	return nil
}

func (s *Store) CreatePartner(_ context.Context, partner entities.NBFCPartner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.partners = append(s.partners, partner)
	return nil
}

func (s *Store) ListPartners(_ context.Context) ([]entities.NBFCPartner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entities.NBFCPartner(nil), s.partners...), nil
}
