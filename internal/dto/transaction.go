package dto

import "github.com/GregMSThompson/budget-planner/internal/models"

// CreateTransactionRequest uses pointers so an absent field can be told apart
// from a zero value.
type CreateTransactionRequest struct {
	Type        *models.TransactionType `json:"type"`
	Category    *string                 `json:"category"`
	Amount      *float64                `json:"amount"`
	Description *string                 `json:"description"`
	Date        *string                 `json:"date"`
}

func (r CreateTransactionRequest) Validate() error {
	switch {
	case r.Type == nil:
		return missing("type")
	case r.Category == nil:
		return missing("category")
	case r.Amount == nil:
		return missing("amount")
	case r.Description == nil:
		return missing("description")
	case r.Date == nil:
		return missing("date")
	}
	return UpdateTransactionRequest(r).Validate()
}

// UpdateTransactionRequest carries a partial update: nil fields are left as
// they are in the store.
type UpdateTransactionRequest struct {
	Type        *models.TransactionType `json:"type"`
	Category    *string                 `json:"category"`
	Amount      *float64                `json:"amount"`
	Description *string                 `json:"description"`
	Date        *string                 `json:"date"`
}

func (r UpdateTransactionRequest) Validate() error {
	if r.Type != nil {
		if err := validateType(*r.Type); err != nil {
			return err
		}
	}
	if r.Category != nil {
		if err := validateCategory(*r.Category); err != nil {
			return err
		}
	}
	if r.Amount != nil {
		if err := validateAmount(*r.Amount); err != nil {
			return err
		}
	}
	if r.Date != nil {
		if err := validateDate(*r.Date); err != nil {
			return err
		}
	}
	return nil
}
