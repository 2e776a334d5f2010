package entities

import "time"

// AuditEntry is one append-only line of the platform trail. ActorTenant is
// denormalized at write time so tenant-scoped reads never join back to the
// identity store.
type AuditEntry struct {
	EntryID     string    `json:"entry_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	Action      string    `json:"action"`
	IPAddress   string    `json:"ip_address"`
	ActorTenant string    `json:"actor_tenant"`
	CreatedAt   time.Time `json:"created_at"`
}
