package entities

import "time"

// NBFCPartner is a registered non-banking financial company that reviews
// loan applications routed to it.
type NBFCPartner struct {
	PartnerID      string    `json:"partner_id"`
	Name           string    `json:"name"`
	APIEndpoint    string    `json:"api_endpoint"`
	CommissionRate float64   `json:"commission_rate"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}
