package dto

type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	CreatedAt   string `json:"created_at"`
}

type ProcessStatementResponse struct {
	Transactions     []TransactionResponse `json:"transactions"`
	Count            int                   `json:"count"`
	Skipped          int                   `json:"skipped,omitempty"`
	Persisted        bool                  `json:"persisted"`
	PersistenceError string                `json:"persistence_error,omitempty"`
}
