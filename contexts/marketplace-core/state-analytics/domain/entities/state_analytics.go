package entities

import "time"

// StateAnalytics is the single cumulative counter-pair for one tenant
// state. Created lazily on first activity and only ever incremented; the
// model has no decrement path.
type StateAnalytics struct {
	AnalyticsID   string    `json:"analytics_id"`
	State         string    `json:"state"`
	TotalRevenue  float64   `json:"total_revenue"`
	TotalRequests int64     `json:"total_requests"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
