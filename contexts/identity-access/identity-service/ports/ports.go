package ports

import (
	"context"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Tenant   string
}

type LoginResult struct {
	AccessToken string
	Role        entities.Role
	Tenant      string
}

type Repository interface {
	// CreateUser persists a new user; a duplicate email surfaces
	// ErrEmailTaken.
	CreateUser(ctx context.Context, user entities.User) error
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByID(ctx context.Context, userID string) (entities.User, error)
	// ApproveMitraKYC flips KYC to approved only for users holding the
	// mitra role; anything else is ErrMitraNotFound.
	ApproveMitraKYC(ctx context.Context, userID string) error
	CountByRole(ctx context.Context, role entities.Role) (int64, error)
}
