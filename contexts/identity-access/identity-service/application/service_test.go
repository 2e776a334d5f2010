package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"vyaparkendra/contexts/identity-access/identity-service/adapters/memory"
	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	domainerrors "vyaparkendra/contexts/identity-access/identity-service/domain/errors"
	"vyaparkendra/contexts/identity-access/identity-service/ports"
)

func newService() Service {
	return Service{
		Repo:      memory.NewStore(),
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
}

func register(t *testing.T, service Service, email string, role string) entities.User {
	t.Helper()

	user, err := service.Register(context.Background(), ports.RegisterInput{
		Name:     "Ravi Sharma",
		Email:    email,
		Password: "s3cret-pass",
		Role:     role,
		Tenant:   "MH",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	service := newService()
	ctx := context.Background()

	user := register(t, service, "ravi@example.com", "mitra")
	if user.KYCStatus != entities.KYCStatusPending {
		t.Fatalf("expected pending kyc, got %s", user.KYCStatus)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in the clear")
	}

	result, err := service.Login(ctx, "ravi@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Role != entities.RoleMitra || result.Tenant != "MH" {
		t.Fatalf("unexpected login result: %+v", result)
	}

	principal, err := service.VerifyToken(ctx, result.AccessToken)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if principal.UserID != user.UserID || principal.Role != entities.RoleMitra || principal.Tenant != "MH" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestRegisterRejectsDuplicateEmailAndUnknownRole(t *testing.T) {
	service := newService()
	ctx := context.Background()

	register(t, service, "ravi@example.com", "mitra")

	_, err := service.Register(ctx, ports.RegisterInput{
		Name:     "Other",
		Email:    "RAVI@example.com",
		Password: "other-pass",
		Role:     "mitra",
		Tenant:   "DL",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected duplicate email rejected, got %v", err)
	}

	_, err = service.Register(ctx, ports.RegisterInput{
		Name:     "Other",
		Email:    "other@example.com",
		Password: "other-pass",
		Role:     "superuser",
		Tenant:   "DL",
	})
	if !errors.Is(err, domainerrors.ErrUnknownRole) {
		t.Fatalf("expected unknown role rejected, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newService()
	ctx := context.Background()

	register(t, service, "ravi@example.com", "mitra")

	if _, err := service.Login(ctx, "ravi@example.com", "wrong"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, err := service.Login(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestVerifyTokenRejectsExpiredAndForged(t *testing.T) {
	service := newService()
	ctx := context.Background()

	register(t, service, "ravi@example.com", "mitra")

	expiring := service
	expiring.TokenTTL = -time.Minute
	result, err := expiring.Login(ctx, "ravi@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := service.VerifyToken(ctx, result.AccessToken); !errors.Is(err, domainerrors.ErrTokenExpired) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}

	foreign := service
	foreign.JWTSecret = []byte("some-other-secret")
	result, err = foreign.Login(ctx, "ravi@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := service.VerifyToken(ctx, result.AccessToken); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected forged token rejected, got %v", err)
	}

	if _, err := service.VerifyToken(ctx, "not-a-token"); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected garbage token rejected, got %v", err)
	}
}

func TestApproveMitraOnlyTouchesMitras(t *testing.T) {
	service := newService()
	ctx := context.Background()

	mitra := register(t, service, "mitra@example.com", "mitra")
	admin := register(t, service, "admin@example.com", "admin")

	if err := service.ApproveMitra(ctx, mitra.UserID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if err := service.ApproveMitra(ctx, admin.UserID); !errors.Is(err, domainerrors.ErrMitraNotFound) {
		t.Fatalf("expected non-mitra rejected, got %v", err)
	}
	if err := service.ApproveMitra(ctx, "missing"); !errors.Is(err, domainerrors.ErrMitraNotFound) {
		t.Fatalf("expected unknown id rejected, got %v", err)
	}
}

func TestCountByRole(t *testing.T) {
	service := newService()
	ctx := context.Background()

	register(t, service, "a@example.com", "mitra")
	register(t, service, "b@example.com", "mitra")
	register(t, service, "c@example.com", "msme")

	count, err := service.CountByRole(ctx, entities.RoleMitra)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 mitras, got %d", count)
	}
}
