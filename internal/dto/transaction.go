package dto

// TransactionQuery narrows a listed snapshot. Nil fields mean "no filter".
// Filtering happens in memory over the fetched snapshot; the store's own
// query stays index-light so the unordered fallback always works.
type TransactionQuery struct {
	Type     *string
	Category *string
	Date     *string // exact YYYY-MM-DD match
	Search   *string // case-insensitive substring over description and category
}

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// UpdateTransactionRequest replaces every user-editable field; partial
// updates are not supported.
type UpdateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}
