package ports

import (
	"context"

	"vyaparkendra/contexts/lending/loan-service/domain/entities"
)

type ApplyLoanInput struct {
	MitraID         string
	ApplicantName   string
	NBFCPartnerID   string
	GSTIN           string
	RequestedAmount float64
}

type AddPartnerInput struct {
	Name           string
	APIEndpoint    string
	CommissionRate float64
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan entities.LoanApplication) error
	ListByMitra(ctx context.Context, mitraID string) ([]entities.LoanApplication, error)
	ListByStatus(ctx context.Context, status entities.LoanStatus) ([]entities.LoanApplication, error)
	UpdateStatus(ctx context.Context, loanID string, status entities.LoanStatus) error
}

type PartnerRepository interface {
	CreatePartner(ctx context.Context, partner entities.NBFCPartner) error
	ListPartners(ctx context.Context) ([]entities.NBFCPartner, error)
}
