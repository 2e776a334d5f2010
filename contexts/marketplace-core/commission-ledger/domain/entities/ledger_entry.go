package entities

import "time"

// EntryKind is the direction of a ledger movement.
type EntryKind string

const (
	EntryKindCredit EntryKind = "credit"
	EntryKindDebit  EntryKind = "debit"
)

// LedgerEntry is one immutable commission movement for an agent. Entries
// are append-only; an agent's balance is always the fold over all of them,
// never a stored figure.
type LedgerEntry struct {
	EntryID     string    `json:"entry_id"`
	AgentID     string    `json:"agent_id"`
	Amount      float64   `json:"amount"`
	Kind        EntryKind `json:"kind"`
	ReferenceID string    `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}
