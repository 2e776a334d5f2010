package http

type WalletResponse struct {
	Balance     float64 `json:"balance"`
	TotalEarned float64 `json:"total_earned"`
}

type BalanceResponse struct {
	TotalCredits float64 `json:"total_credits"`
	TotalDebits  float64 `json:"total_debits"`
	Net          float64 `json:"net"`
}

type LedgerEntryDTO struct {
	EntryID     string  `json:"entry_id"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind"`
	ReferenceID string  `json:"reference_id"`
	CreatedAt   string  `json:"created_at"`
}

type StatementResponse struct {
	Status string           `json:"status"`
	Data   []LedgerEntryDTO `json:"data"`
}
