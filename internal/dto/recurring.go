package dto

import "github.com/GregMSThompson/budget-planner/internal/models"

type CreateRecurringRequest struct {
	Type        *models.TransactionType `json:"type"`
	Category    *string                 `json:"category"`
	Amount      *float64                `json:"amount"`
	Description *string                 `json:"description"`
	Frequency   *models.Frequency       `json:"frequency"`
}

func (r CreateRecurringRequest) Validate() error {
	switch {
	case r.Type == nil:
		return missing("type")
	case r.Category == nil:
		return missing("category")
	case r.Amount == nil:
		return missing("amount")
	case r.Description == nil:
		return missing("description")
	case r.Frequency == nil:
		return missing("frequency")
	}
	return UpdateRecurringRequest(r).Validate()
}

// UpdateRecurringRequest carries a partial update. Changing Frequency does not
// recompute nextDate.
type UpdateRecurringRequest struct {
	Type        *models.TransactionType `json:"type"`
	Category    *string                 `json:"category"`
	Amount      *float64                `json:"amount"`
	Description *string                 `json:"description"`
	Frequency   *models.Frequency       `json:"frequency"`
}

func (r UpdateRecurringRequest) Validate() error {
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
	if r.Frequency != nil {
		if err := validateFrequency(*r.Frequency); err != nil {
			return err
		}
	}
	return nil
}
