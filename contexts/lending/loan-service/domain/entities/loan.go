package entities

import "time"

// LoanStatus is the closed lifecycle of a loan application. Transitions
// out of submitted are driven by NBFC reviewers.
type LoanStatus string

const (
	LoanStatusSubmitted LoanStatus = "submitted"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusRejected  LoanStatus = "rejected"
	LoanStatusDisbursed LoanStatus = "disbursed"
)

func ParseReviewStatus(raw string) (LoanStatus, bool) {
	switch LoanStatus(raw) {
	case LoanStatusApproved, LoanStatusRejected, LoanStatusDisbursed:
		return LoanStatus(raw), true
	}
	return "", false
}

type LoanApplication struct {
	LoanID          string     `json:"loan_id"`
	MitraID         string     `json:"mitra_id"`
	ApplicantName   string     `json:"applicant_name"`
	NBFCPartnerID   string     `json:"nbfc_partner_id"`
	GSTIN           string     `json:"gstin"`
	RequestedAmount float64    `json:"requested_amount"`
	CreditScore     int        `json:"credit_score"`
	Status          LoanStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
