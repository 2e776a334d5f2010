package memory

import (
	"context"
	"sync"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	domainerrors "vyaparkendra/contexts/identity-access/identity-service/domain/errors"
)

type Store struct {
	mu      sync.RWMutex
	users   map[string]entities.User
	byEmail map[string]string
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return domainerrors.ErrEmailTaken
	}
	s.users[user.UserID] = user
	s.byEmail[user.Email] = user.UserID
	return nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return s.users[userID], nil
}

func (s *Store) GetByID(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ApproveMitraKYC(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok || user.Role != entities.RoleMitra {
		return domainerrors.ErrMitraNotFound
	}
	user.KYCStatus = entities.KYCStatusApproved
	s.users[userID] = user
	return nil
}

func (s *Store) CountByRole(_ context.Context, role entities.Role) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, user := range s.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}
