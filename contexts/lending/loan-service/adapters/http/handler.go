package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vyaparkendra/contexts/lending/loan-service/application"
	"vyaparkendra/contexts/lending/loan-service/domain/entities"
	domainservices "vyaparkendra/contexts/lending/loan-service/domain/services"
	"vyaparkendra/contexts/lending/loan-service/ports"
	httptransport "vyaparkendra/contexts/lending/loan-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ApplyLoanHandler(ctx context.Context, body httptransport.ApplyLoanRequest, mitraID string) (httptransport.ApplyLoanResponse, error) {
	loan, err := h.Service.ApplyLoan(ctx, ports.ApplyLoanInput{
		MitraID:         mitraID,
		ApplicantName:   body.ApplicantName,
		NBFCPartnerID:   body.NBFCPartnerID,
		GSTIN:           body.GSTIN,
		RequestedAmount: body.RequestedAmount,
	})
	if err != nil {
		return httptransport.ApplyLoanResponse{}, err
	}
	return httptransport.ApplyLoanResponse{
		Status:      "success",
		Message:     "Loan application submitted",
		LoanID:      loan.LoanID,
		CreditScore: loan.CreditScore,
	}, nil
}

func (h Handler) ListLoansByMitraHandler(ctx context.Context, mitraID string) (httptransport.ListLoansResponse, error) {
	loans, err := h.Service.ListLoansByMitra(ctx, mitraID)
	if err != nil {
		return httptransport.ListLoansResponse{}, err
	}
	return toListResponse(loans), nil
}

func (h Handler) ListSubmittedLoansHandler(ctx context.Context) (httptransport.ListLoansResponse, error) {
	loans, err := h.Service.ListSubmittedLoans(ctx)
	if err != nil {
		return httptransport.ListLoansResponse{}, err
	}
	return toListResponse(loans), nil
}

func (h Handler) UpdateLoanStatusHandler(ctx context.Context, loanID string, status string) (httptransport.UpdateLoanStatusResponse, error) {
	if err := h.Service.UpdateLoanStatus(ctx, loanID, status); err != nil {
		return httptransport.UpdateLoanStatusResponse{}, err
	}
	return httptransport.UpdateLoanStatusResponse{
		Status:  "success",
		Message: "Loan status updated",
	}, nil
}

func (h Handler) AddPartnerHandler(ctx context.Context, body httptransport.AddPartnerRequest) (httptransport.AddPartnerResponse, error) {
	partner, err := h.Service.AddPartner(ctx, ports.AddPartnerInput{
		Name:           body.Name,
		APIEndpoint:    body.APIEndpoint,
		CommissionRate: body.CommissionRate,
	})
	if err != nil {
		return httptransport.AddPartnerResponse{}, err
	}
	return httptransport.AddPartnerResponse{
		Status:    "success",
		Message:   "NBFC partner added",
		PartnerID: partner.PartnerID,
	}, nil
}

func (h Handler) ListPartnersHandler(ctx context.Context) (httptransport.ListPartnersResponse, error) {
	partners, err := h.Service.ListPartners(ctx)
	if err != nil {
		return httptransport.ListPartnersResponse{}, err
	}

	resp := httptransport.ListPartnersResponse{
		Status: "success",
		Data:   make([]httptransport.PartnerDTO, 0, len(partners)),
	}
	for _, partner := range partners {
		resp.Data = append(resp.Data, httptransport.PartnerDTO{
			PartnerID:      partner.PartnerID,
			Name:           partner.Name,
			APIEndpoint:    partner.APIEndpoint,
			CommissionRate: partner.CommissionRate,
			Active:         partner.Active,
		})
	}
	return resp, nil
}

// CreditScoreHandler is the MSME self-check. Stateless: same placeholder
// scoring the loan intake uses.
func (h Handler) CreditScoreHandler(_ context.Context, gstin string) httptransport.CreditScoreResponse {
	return httptransport.CreditScoreResponse{
		Status:      "success",
		GSTIN:       gstin,
		CreditScore: domainservices.MockCreditScore(gstin),
	}
}

func toListResponse(loans []entities.LoanApplication) httptransport.ListLoansResponse {
	resp := httptransport.ListLoansResponse{
		Status: "success",
		Data:   make([]httptransport.LoanDTO, 0, len(loans)),
	}
	for _, loan := range loans {
		resp.Data = append(resp.Data, httptransport.LoanDTO{
			LoanID:          loan.LoanID,
			MitraID:         loan.MitraID,
			ApplicantName:   loan.ApplicantName,
			NBFCPartnerID:   loan.NBFCPartnerID,
			GSTIN:           loan.GSTIN,
			RequestedAmount: loan.RequestedAmount,
			CreditScore:     loan.CreditScore,
			LoanStatus:      string(loan.Status),
			CreatedAt:       loan.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
