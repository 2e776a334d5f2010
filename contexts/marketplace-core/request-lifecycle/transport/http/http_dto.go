package httptransport

type CreateRequestRequest struct {
	CitizenName string `json:"citizen_name"`
	MSMEID      string `json:"msme_id"`
	ServiceID   string `json:"service_id"`
}

type CreateRequestResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type CompleteRequestResponse struct {
	Status           string  `json:"status"`
	Message          string  `json:"message"`
	RequestID        string  `json:"request_id"`
	CommissionEarned float64 `json:"commission_earned"`
	CompletedAt      string  `json:"completed_at"`
}

type ServiceRequestDTO struct {
	RequestID   string `json:"request_id"`
	CitizenName string `json:"citizen_name"`
	MSMEID      string `json:"msme_id"`
	MitraID     string `json:"mitra_id"`
	ServiceID   string `json:"service_id"`
	Tenant      string `json:"tenant"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type ListRequestsResponse struct {
	Status string              `json:"status"`
	Data   []ServiceRequestDTO `json:"data"`
}
