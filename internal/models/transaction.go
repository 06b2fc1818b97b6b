package models

import (
	"time"
)

// Transaction kinds. The set is closed: aggregation rejects anything else.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense record. The owning user is not a
// field; ownership is carried by the Firestore path users/{uid}/transactions,
// which is the only access-control boundary in the system.
type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"` // doc ID
	Type          string    `firestore:"type" json:"type"`                   // income or expense
	Amount        float64   `firestore:"amount" json:"amount"`               // non-negative; sign comes from Type
	Category      string    `firestore:"category" json:"category"`
	Description   string    `firestore:"description" json:"description"`
	Date          string    `firestore:"date" json:"date"` // YYYY-MM-DD, the day the transaction is attributed to
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
