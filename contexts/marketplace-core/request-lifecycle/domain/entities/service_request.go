package entities

import "time"

// RequestStatus is the closed state set of a service request. The only
// transition is in_progress to completed; there is no cancellation state.
type RequestStatus string

const (
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
)

// ServiceRequest is one citizen/MSME service engagement executed by a
// mitra. Created in_progress, mutated exactly once on the terminal
// transition, never deleted.
type ServiceRequest struct {
	RequestID   string        `json:"request_id"`
	CitizenName string        `json:"citizen_name"`
	MSMEID      string        `json:"msme_id,omitempty"`
	AgentID     string        `json:"mitra_id"`
	ServiceID   string        `json:"service_id"`
	Tenant      string        `json:"tenant"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}
