package models

import "time"

type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction is a template for a repeating income or expense.
// NextDate is set once at creation and is not advanced afterwards.
type RecurringTransaction struct {
	ID          string          `firestore:"id" json:"id"`
	Type        TransactionType `firestore:"type" json:"type"`
	Category    string          `firestore:"category" json:"category"`
	Amount      float64         `firestore:"amount" json:"amount"`
	Description string          `firestore:"description" json:"description"`
	Frequency   Frequency       `firestore:"frequency" json:"frequency"`
	NextDate    string          `firestore:"nextDate" json:"nextDate"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"created_at"`
	UpdatedAt   time.Time       `firestore:"updatedAt" json:"updated_at"`
}
