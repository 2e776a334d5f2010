package http

type StateAnalyticsDTO struct {
	State         string  `json:"state"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalRequests int64   `json:"total_requests"`
	LastUpdated   string  `json:"last_updated,omitempty"`
}

type StateAnalyticsResponse struct {
	Status string            `json:"status"`
	Data   StateAnalyticsDTO `json:"data"`
}

type ListStateAnalyticsResponse struct {
	Status string              `json:"status"`
	Data   []StateAnalyticsDTO `json:"data"`
}
