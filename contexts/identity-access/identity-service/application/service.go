package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	domainerrors "vyaparkendra/contexts/identity-access/identity-service/domain/errors"
	"vyaparkendra/contexts/identity-access/identity-service/ports"
)

// Service owns registration, credential checks and token issuance. The
// signing secret and TTL come from platform config.
type Service struct {
	Repo      ports.Repository
	JWTSecret []byte
	TokenTTL  time.Duration
	Logger    *slog.Logger
}

func (s Service) Register(ctx context.Context, input ports.RegisterInput) (entities.User, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" ||
		strings.TrimSpace(input.Tenant) == "" {
		return entities.User{}, domainerrors.ErrInvalidUserInput
	}

	role, ok := entities.ParseRole(strings.TrimSpace(input.Role))
	if !ok {
		return entities.User{}, domainerrors.ErrUnknownRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Tenant:       strings.TrimSpace(input.Tenant),
		KYCStatus:    entities.KYCStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	resolveLogger(s.Logger).Info("user registered",
		"event", "user_registered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
		"tenant", user.Tenant,
	)
	return user, nil
}

func (s Service) Login(ctx context.Context, email string, password string) (ports.LoginResult, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return ports.LoginResult{}, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return ports.LoginResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ports.LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"role":    string(user.Role),
		"tenant":  user.Tenant,
		"exp":     now.Add(s.tokenTTL()).Unix(),
		"iat":     now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
	if err != nil {
		return ports.LoginResult{}, err
	}

	resolveLogger(s.Logger).Info("user logged in",
		"event", "user_logged_in",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)

	return ports.LoginResult{
		AccessToken: token,
		Role:        user.Role,
		Tenant:      user.Tenant,
	}, nil
}

// VerifyToken parses and validates a bearer token and returns the
// authenticated principal.
func (s Service) VerifyToken(_ context.Context, tokenString string) (entities.Principal, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return s.JWTSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return entities.Principal{}, domainerrors.ErrTokenExpired
	}
	if err != nil || !token.Valid {
		return entities.Principal{}, domainerrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Principal{}, domainerrors.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	rawRole, _ := claims["role"].(string)
	tenant, _ := claims["tenant"].(string)

	role, ok := entities.ParseRole(rawRole)
	if userID == "" || !ok {
		return entities.Principal{}, domainerrors.ErrTokenInvalid
	}

	return entities.Principal{UserID: userID, Role: role, Tenant: tenant}, nil
}

// ApproveMitra flips a mitra's KYC to approved.
func (s Service) ApproveMitra(ctx context.Context, mitraID string) error {
	if strings.TrimSpace(mitraID) == "" {
		return domainerrors.ErrInvalidUserInput
	}
	if err := s.Repo.ApproveMitraKYC(ctx, strings.TrimSpace(mitraID)); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("mitra kyc approved",
		"event", "mitra_kyc_approved",
		"module", "identity-access/identity-service",
		"layer", "application",
		"mitra_id", mitraID,
	)
	return nil
}

func (s Service) CountByRole(ctx context.Context, role entities.Role) (int64, error) {
	return s.Repo.CountByRole(ctx, role)
}

func (s Service) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
