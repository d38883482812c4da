package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/models"
)

type transactionAnalyticsStore interface {
	Each(ctx context.Context, handle func(*models.Transaction) error) error
}

type analyticsService struct {
	txs transactionAnalyticsStore
}

func NewAnalyticsService(txs transactionAnalyticsStore) *analyticsService {
	return &analyticsService{txs: txs}
}

// Summary totals income and expenses over every stored transaction. Sums are
// kept as decimals so cents do not drift.
func (s *analyticsService) Summary(ctx context.Context) (dto.SummaryResult, error) {
	income, expenses := decimal.Zero, decimal.Zero

	err := s.txs.Each(ctx, func(tx *models.Transaction) error {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income = income.Add(decimal.NewFromFloat(tx.Amount))
		case models.TransactionTypeExpense:
			expenses = expenses.Add(decimal.NewFromFloat(tx.Amount))
		}
		return nil
	})
	if err != nil {
		return dto.SummaryResult{}, err
	}

	return dto.SummaryResult{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Balance:  income.Sub(expenses).InexactFloat64(),
	}, nil
}

type categoryTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// CategoryBreakdown returns income and expense totals per category, in the
// order each category is first seen.
func (s *analyticsService) CategoryBreakdown(ctx context.Context) ([]dto.CategoryBreakdownItem, error) {
	totals := make(map[string]*categoryTotals)
	order := make([]string, 0)

	err := s.txs.Each(ctx, func(tx *models.Transaction) error {
		ct, ok := totals[tx.Category]
		if !ok {
			ct = &categoryTotals{}
			totals[tx.Category] = ct
			order = append(order, tx.Category)
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			ct.income = ct.income.Add(decimal.NewFromFloat(tx.Amount))
		case models.TransactionTypeExpense:
			ct.expense = ct.expense.Add(decimal.NewFromFloat(tx.Amount))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryBreakdownItem, 0, len(order))
	for _, category := range order {
		ct := totals[category]
		items = append(items, dto.CategoryBreakdownItem{
			Category: category,
			Income:   ct.income.InexactFloat64(),
			Expense:  ct.expense.InexactFloat64(),
		})
	}
	return items, nil
}
