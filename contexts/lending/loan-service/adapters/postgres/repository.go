package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"vyaparkendra/contexts/lending/loan-service/domain/entities"
	domainerrors "vyaparkendra/contexts/lending/loan-service/domain/errors"
	"vyaparkendra/internal/platform/db"
)

type loanModel struct {
	LoanID          string  `gorm:"primaryKey;column:loan_id"`
	MitraID         string  `gorm:"column:mitra_id;index"`
	ApplicantName   string  `gorm:"column:applicant_name"`
	NBFCPartnerID   string  `gorm:"column:nbfc_partner_id"`
	GSTIN           string  `gorm:"column:gstin"`
	RequestedAmount float64 `gorm:"column:requested_amount"`
	CreditScore     int     `gorm:"column:credit_score"`
	Status          string  `gorm:"column:status;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (loanModel) TableName() string { return "loan_applications" }

type partnerModel struct {
	PartnerID      string  `gorm:"primaryKey;column:partner_id"`
	Name           string  `gorm:"column:name"`
	APIEndpoint    string  `gorm:"column:api_endpoint"`
	CommissionRate float64 `gorm:"column:commission_rate"`
	Active         bool    `gorm:"column:active"`
	CreatedAt      time.Time
}

func (partnerModel) TableName() string { return "nbfc_partners" }

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
	return database.AutoMigrate(&loanModel{}, &partnerModel{})
}

func (r *Repository) CreateLoan(ctx context.Context, loan entities.LoanApplication) error {
	model := loanModel{
		LoanID:          loan.LoanID,
		MitraID:         loan.MitraID,
		ApplicantName:   loan.ApplicantName,
		NBFCPartnerID:   loan.NBFCPartnerID,
		GSTIN:           loan.GSTIN,
		RequestedAmount: loan.RequestedAmount,
		CreditScore:     loan.CreditScore,
		Status:          string(loan.Status),
		CreatedAt:       loan.CreatedAt,
		UpdatedAt:       loan.UpdatedAt,
	}
	return db.Session(ctx, r.db).Create(&model).Error
}

func (r *Repository) ListByMitra(ctx context.Context, mitraID string) ([]entities.LoanApplication, error) {
	var models []loanModel

	err := db.Session(ctx, r.db).
		Where("mitra_id = ?", mitraID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toLoanEntities(models), nil
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.LoanStatus) ([]entities.LoanApplication, error) {
	var models []loanModel

	err := db.Session(ctx, r.db).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toLoanEntities(models), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, loanID string, status entities.LoanStatus) error {
	result := db.Session(ctx, r.db).
		Model(&loanModel{}).
		Where("loan_id = ?", loanID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLoanNotFound
	}
	return nil
}

func (r *Repository) CreatePartner(ctx context.Context, partner entities.NBFCPartner) error {
	model := partnerModel{
		PartnerID:      partner.PartnerID,
		Name:           partner.Name,
		APIEndpoint:    partner.APIEndpoint,
		CommissionRate: partner.CommissionRate,
		Active:         partner.Active,
		CreatedAt:      partner.CreatedAt,
	}
	return db.Session(ctx, r.db).Create(&model).Error
}

func (r *Repository) ListPartners(ctx context.Context) ([]entities.NBFCPartner, error) {
	var models []partnerModel

	err := db.Session(ctx, r.db).Order("created_at ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	partners := make([]entities.NBFCPartner, 0, len(models))
	for _, model := range models {
		partners = append(partners, entities.NBFCPartner{
			PartnerID:      model.PartnerID,
			Name:           model.Name,
			APIEndpoint:    model.APIEndpoint,
			CommissionRate: model.CommissionRate,
			Active:         model.Active,
			CreatedAt:      model.CreatedAt,
		})
	}
	return partners, nil
}

func toLoanEntities(models []loanModel) []entities.LoanApplication {
	loans := make([]entities.LoanApplication, 0, len(models))
	for _, model := range models {
		loans = append(loans, entities.LoanApplication{
			LoanID:          model.LoanID,
			MitraID:         model.MitraID,
			ApplicantName:   model.ApplicantName,
			NBFCPartnerID:   model.NBFCPartnerID,
			GSTIN:           model.GSTIN,
			RequestedAmount: model.RequestedAmount,
			CreditScore:     model.CreditScore,
			Status:          entities.LoanStatus(model.Status),
			CreatedAt:       model.CreatedAt,
			UpdatedAt:       model.UpdatedAt,
		})
	}
	return loans
}
