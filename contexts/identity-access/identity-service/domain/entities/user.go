package entities

import "time"

type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
)

type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Tenant       string    `json:"tenant"`
	KYCStatus    KYCStatus `json:"kyc_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a request after
// token verification.
type Principal struct {
	UserID string
	Role   Role
	Tenant string
}
