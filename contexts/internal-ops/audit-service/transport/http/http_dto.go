package httptransport

type AuditEntryDTO struct {
	EntryID     string `json:"entry_id"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	Action      string `json:"action"`
	IPAddress   string `json:"ip_address"`
	ActorTenant string `json:"actor_tenant"`
	CreatedAt   string `json:"created_at"`
}

type ListAuditEntriesResponse struct {
	Status string          `json:"status"`
	Data   []AuditEntryDTO `json:"data"`
}
