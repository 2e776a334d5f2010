package entities

// Service is priced reference data scoped to a tenant state. Catalog
// administrators own it; the request lifecycle only reads it.
type Service struct {
	ServiceID       string  `json:"service_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	MitraCommission float64 `json:"mitra_commission"`
	Tenant          string  `json:"tenant"`
}
