package httptransport

type ApplyLoanRequest struct {
	ApplicantName   string  `json:"applicant_name"`
	NBFCPartnerID   string  `json:"nbfc_partner_id"`
	GSTIN           string  `json:"gstin"`
	RequestedAmount float64 `json:"requested_amount"`
}

type ApplyLoanResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	LoanID      string `json:"loan_id"`
	CreditScore int    `json:"credit_score"`
}

type LoanDTO struct {
	LoanID          string  `json:"loan_id"`
	MitraID         string  `json:"mitra_id"`
	ApplicantName   string  `json:"applicant_name"`
	NBFCPartnerID   string  `json:"nbfc_partner_id"`
	GSTIN           string  `json:"gstin"`
	RequestedAmount float64 `json:"requested_amount"`
	CreditScore     int     `json:"credit_score"`
	LoanStatus      string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

type ListLoansResponse struct {
	Status string    `json:"status"`
	Data   []LoanDTO `json:"data"`
}

type UpdateLoanStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AddPartnerRequest struct {
	Name           string  `json:"name"`
	APIEndpoint    string  `json:"api_endpoint"`
	CommissionRate float64 `json:"commission_rate"`
}

type AddPartnerResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	PartnerID string `json:"partner_id"`
}

type PartnerDTO struct {
	PartnerID      string  `json:"partner_id"`
	Name           string  `json:"name"`
	APIEndpoint    string  `json:"api_endpoint"`
	CommissionRate float64 `json:"commission_rate"`
	Active         bool    `json:"active"`
}

type ListPartnersResponse struct {
	Status string       `json:"status"`
	Data   []PartnerDTO `json:"data"`
}

type CreditScoreResponse struct {
	Status      string `json:"status"`
	GSTIN       string `json:"gstin"`
	CreditScore int    `json:"credit_score"`
}
