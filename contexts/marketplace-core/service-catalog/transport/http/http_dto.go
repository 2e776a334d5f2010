package http

type AddServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	MitraCommission float64 `json:"mitra_commission"`
	Tenant          string  `json:"tenant"`
}

type AddServiceResponse struct {
	Message   string `json:"message"`
	ServiceID string `json:"service_id"`
}

type ServiceDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type ListServicesResponse struct {
	Status string       `json:"status"`
	Data   []ServiceDTO `json:"data"`
}
