package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
	domainerrors "vyaparkendra/contexts/identity-access/identity-service/domain/errors"
	"vyaparkendra/internal/platform/db"
)

type userModel struct {
	UserID       string `gorm:"primaryKey;column:user_id"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role;index"`
	Tenant       string `gorm:"column:tenant;index"`
	KYCStatus    string `gorm:"column:kyc_status"`
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

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
	return database.AutoMigrate(&userModel{})
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) error {
	model := userModel{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Tenant:       user.Tenant,
		KYCStatus:    string(user.KYCStatus),
		CreatedAt:    user.CreatedAt,
	}

	err := db.Session(ctx, r.db).Create(&model).Error
	if isUniqueViolation(err) {
		return domainerrors.ErrEmailTaken
	}
	return err
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var model userModel

	err := db.Session(ctx, r.db).Where("email = ?", email).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, err
	}
	return toEntity(model), nil
}

func (r *Repository) GetByID(ctx context.Context, userID string) (entities.User, error) {
	var model userModel

	err := db.Session(ctx, r.db).Where("user_id = ?", userID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, err
	}
	return toEntity(model), nil
}

func (r *Repository) ApproveMitraKYC(ctx context.Context, userID string) error {
	result := db.Session(ctx, r.db).
		Model(&userModel{}).
		Where("user_id = ? AND role = ?", userID, string(entities.RoleMitra)).
		Update("kyc_status", string(entities.KYCStatusApproved))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMitraNotFound
	}
	return nil
}

func (r *Repository) CountByRole(ctx context.Context, role entities.Role) (int64, error) {
	var count int64
	err := db.Session(ctx, r.db).
		Model(&userModel{}).
		Where("role = ?", string(role)).
		Count(&count).Error
	return count, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toEntity(model userModel) entities.User {
	return entities.User{
		UserID:       model.UserID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         entities.Role(model.Role),
		Tenant:       model.Tenant,
		KYCStatus:    entities.KYCStatus(model.KYCStatus),
		CreatedAt:    model.CreatedAt,
	}
}
