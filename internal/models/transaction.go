package models

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// DateLayout is the calendar date format used for Date and NextDate.
const DateLayout = "2006-01-02"

// Transaction is a one-off income or expense. Amount is a magnitude; the sign
// comes from Type.
type Transaction struct {
	ID          string          `firestore:"id" json:"id"` // also the document ID
	Type        TransactionType `firestore:"type" json:"type"`
	Category    string          `firestore:"category" json:"category"`
	Amount      float64         `firestore:"amount" json:"amount"`
	Description string          `firestore:"description" json:"description"`
	Date        string          `firestore:"date" json:"date"` // YYYY-MM-DD, when it happened
	CreatedAt   time.Time       `firestore:"createdAt" json:"created_at"`
	UpdatedAt   time.Time       `firestore:"updatedAt" json:"updated_at"`
}
