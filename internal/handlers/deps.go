package handlers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/models"
	"github.com/GregMSThompson/budget-planner/internal/response"
)

type TransactionService interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
	Get(ctx context.Context, id string) (*models.Transaction, error)
	Update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type RecurringService interface {
	Create(ctx context.Context, req dto.CreateRecurringRequest) (*models.RecurringTransaction, error)
	List(ctx context.Context) ([]*models.RecurringTransaction, error)
	Get(ctx context.Context, id string) (*models.RecurringTransaction, error)
	Update(ctx context.Context, id string, req dto.UpdateRecurringRequest) (*models.RecurringTransaction, error)
	Delete(ctx context.Context, id string) error
}

type AnalyticsService interface {
	Summary(ctx context.Context) (dto.SummaryResult, error)
	CategoryBreakdown(ctx context.Context) ([]dto.CategoryBreakdownItem, error)
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	RecurringSvc    RecurringService
	AnalyticsSvc    AnalyticsService
}
