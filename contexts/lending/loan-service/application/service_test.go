package application

import (
	"context"
	"errors"
	"testing"

	"vyaparkendra/contexts/lending/loan-service/adapters/memory"
	"vyaparkendra/contexts/lending/loan-service/domain/entities"
	domainerrors "vyaparkendra/contexts/lending/loan-service/domain/errors"
	"vyaparkendra/contexts/lending/loan-service/ports"
)

func newService() Service {
	store := memory.NewStore()
	return Service{Loans: store, Partners: store}
}

func applyLoan(t *testing.T, service Service, mitraID string, gstin string) entities.LoanApplication {
	t.Helper()

	loan, err := service.ApplyLoan(context.Background(), ports.ApplyLoanInput{
		MitraID:         mitraID,
		ApplicantName:   "Kirana Traders",
		NBFCPartnerID:   "nbfc-1",
		GSTIN:           gstin,
		RequestedAmount: 200000,
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	return loan
}

func TestApplyLoanScoresFromGSTIN(t *testing.T) {
	service := newService()

	withGSTIN := applyLoan(t, service, "mitra-1", "27AAPFU0939F1ZV")
	if withGSTIN.CreditScore != 750 {
		t.Fatalf("expected 750 for 15-char gstin, got %d", withGSTIN.CreditScore)
	}
	if withGSTIN.Status != entities.LoanStatusSubmitted {
		t.Fatalf("expected submitted, got %s", withGSTIN.Status)
	}

	withoutGSTIN := applyLoan(t, service, "mitra-1", "")
	if withoutGSTIN.CreditScore != 600 {
		t.Fatalf("expected 600 without gstin, got %d", withoutGSTIN.CreditScore)
	}
}

func TestSubmittedInboxShrinksAsLoansAreReviewed(t *testing.T) {
	service := newService()
	ctx := context.Background()

	first := applyLoan(t, service, "mitra-1", "27AAPFU0939F1ZV")
	applyLoan(t, service, "mitra-2", "")

	inbox, err := service.ListSubmittedLoans(ctx)
	if err != nil {
		t.Fatalf("inbox failed: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 submitted loans, got %d", len(inbox))
	}

	if err := service.UpdateLoanStatus(ctx, first.LoanID, "approved"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	inbox, err = service.ListSubmittedLoans(ctx)
	if err != nil {
		t.Fatalf("inbox failed: %v", err)
	}
	if len(inbox) != 1 {
		t.Fatalf("expected 1 submitted loan after review, got %d", len(inbox))
	}

	mine, err := service.ListLoansByMitra(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 || mine[0].Status != entities.LoanStatusApproved {
		t.Fatalf("expected approved loan in mitra list, got %+v", mine)
	}
}

func TestUpdateLoanStatusRejectsOutsideClosedSet(t *testing.T) {
	service := newService()
	ctx := context.Background()

	loan := applyLoan(t, service, "mitra-1", "")

	for _, status := range []string{"submitted", "cancelled", ""} {
		if err := service.UpdateLoanStatus(ctx, loan.LoanID, status); !errors.Is(err, domainerrors.ErrInvalidLoanStatus) {
			t.Fatalf("expected %q rejected, got %v", status, err)
		}
	}

	if err := service.UpdateLoanStatus(ctx, "missing", "approved"); !errors.Is(err, domainerrors.ErrLoanNotFound) {
		t.Fatalf("expected unknown loan rejected, got %v", err)
	}
}

func TestAddPartnerStartsActive(t *testing.T) {
	service := newService()
	ctx := context.Background()

	partner, err := service.AddPartner(ctx, ports.AddPartnerInput{
		Name:           "Bharat Capital",
		APIEndpoint:    "https://api.bharatcapital.example",
		CommissionRate: 1.5,
	})
	if err != nil {
		t.Fatalf("add partner failed: %v", err)
	}
	if !partner.Active {
		t.Fatal("expected new partner active")
	}

	partners, err := service.ListPartners(ctx)
	if err != nil {
		t.Fatalf("list partners failed: %v", err)
	}
	if len(partners) != 1 || partners[0].PartnerID != partner.PartnerID {
		t.Fatalf("unexpected partner list: %+v", partners)
	}
}

func TestApplyLoanValidatesInput(t *testing.T) {
	service := newService()

	_, err := service.ApplyLoan(context.Background(), ports.ApplyLoanInput{
		MitraID:       "mitra-1",
		ApplicantName: "Kirana Traders",
	})
	if !errors.Is(err, domainerrors.ErrInvalidLoanInput) {
		t.Fatalf("expected invalid input for zero amount, got %v", err)
	}
}
