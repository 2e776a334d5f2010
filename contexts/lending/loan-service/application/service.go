package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"vyaparkendra/contexts/lending/loan-service/domain/entities"
	domainerrors "vyaparkendra/contexts/lending/loan-service/domain/errors"
	domainservices "vyaparkendra/contexts/lending/loan-service/domain/services"
	"vyaparkendra/contexts/lending/loan-service/ports"
)

type Service struct {
	Loans    ports.LoanRepository
	Partners ports.PartnerRepository
	Logger   *slog.Logger
}

// ApplyLoan files a new application. The credit score is the placeholder
// GSTIN-derived one until a bureau integration lands.
func (s Service) ApplyLoan(ctx context.Context, input ports.ApplyLoanInput) (entities.LoanApplication, error) {
	if strings.TrimSpace(input.MitraID) == "" ||
		strings.TrimSpace(input.ApplicantName) == "" ||
		input.RequestedAmount <= 0 {
		return entities.LoanApplication{}, domainerrors.ErrInvalidLoanInput
	}

	now := time.Now().UTC()
	loan := entities.LoanApplication{
		LoanID:          uuid.NewString(),
		MitraID:         strings.TrimSpace(input.MitraID),
		ApplicantName:   strings.TrimSpace(input.ApplicantName),
		NBFCPartnerID:   strings.TrimSpace(input.NBFCPartnerID),
		GSTIN:           strings.TrimSpace(input.GSTIN),
		RequestedAmount: input.RequestedAmount,
		CreditScore:     domainservices.MockCreditScore(strings.TrimSpace(input.GSTIN)),
		Status:          entities.LoanStatusSubmitted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Loans.CreateLoan(ctx, loan); err != nil {
		return entities.LoanApplication{}, err
	}

	resolveLogger(s.Logger).Info("loan application filed",
		"event", "loan_applied",
		"module", "lending/loan-service",
		"layer", "application",
		"loan_id", loan.LoanID,
		"mitra_id", loan.MitraID,
		"credit_score", loan.CreditScore,
	)
	return loan, nil
}

func (s Service) ListLoansByMitra(ctx context.Context, mitraID string) ([]entities.LoanApplication, error) {
	if strings.TrimSpace(mitraID) == "" {
		return nil, domainerrors.ErrInvalidLoanInput
	}
	return s.Loans.ListByMitra(ctx, strings.TrimSpace(mitraID))
}

// ListSubmittedLoans is the NBFC review inbox.
func (s Service) ListSubmittedLoans(ctx context.Context) ([]entities.LoanApplication, error) {
	return s.Loans.ListByStatus(ctx, entities.LoanStatusSubmitted)
}

func (s Service) UpdateLoanStatus(ctx context.Context, loanID string, rawStatus string) error {
	if strings.TrimSpace(loanID) == "" {
		return domainerrors.ErrInvalidLoanInput
	}
	status, ok := entities.ParseReviewStatus(strings.TrimSpace(rawStatus))
	if !ok {
		return domainerrors.ErrInvalidLoanStatus
	}
	if err := s.Loans.UpdateStatus(ctx, strings.TrimSpace(loanID), status); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("loan status updated",
		"event", "loan_status_updated",
		"module", "lending/loan-service",
		"layer", "application",
		"loan_id", loanID,
		"status", string(status),
	)
	return nil
}

func (s Service) AddPartner(ctx context.Context, input ports.AddPartnerInput) (entities.NBFCPartner, error) {
	if strings.TrimSpace(input.Name) == "" || input.CommissionRate < 0 {
		return entities.NBFCPartner{}, domainerrors.ErrInvalidPartnerInput
	}

	partner := entities.NBFCPartner{
		PartnerID:      uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		APIEndpoint:    strings.TrimSpace(input.APIEndpoint),
		CommissionRate: input.CommissionRate,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Partners.CreatePartner(ctx, partner); err != nil {
		return entities.NBFCPartner{}, err
	}

	resolveLogger(s.Logger).Info("nbfc partner registered",
		"event", "partner_registered",
		"module", "lending/loan-service",
		"layer", "application",
		"partner_id", partner.PartnerID,
	)
	return partner, nil
}

func (s Service) ListPartners(ctx context.Context) ([]entities.NBFCPartner, error) {
	return s.Partners.ListPartners(ctx)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
