package dto

import (
	"strings"
	"time"

	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/internal/models"
)

func missing(field string) error {
	return errs.NewValidationError(field + " is required")
}

func validateType(t models.TransactionType) error {
	if !t.Valid() {
		return errs.NewValidationError("type must be one of: income, expense")
	}
	return nil
}

func validateFrequency(f models.Frequency) error {
	if !f.Valid() {
		return errs.NewValidationError("frequency must be one of: weekly, monthly, yearly")
	}
	return nil
}

func validateCategory(c string) error {
	if strings.TrimSpace(c) == "" {
		return errs.NewValidationError("category must not be empty")
	}
	return nil
}

func validateAmount(a float64) error {
	if a < 0 {
		return errs.NewValidationError("amount must not be negative")
	}
	return nil
}

func validateDate(d string) error {
	if _, err := time.Parse(models.DateLayout, d); err != nil {
		return errs.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	return nil
}
