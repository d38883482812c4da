package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/models"
	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

type transactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	Get(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
	Update(ctx context.Context, id string, req dto.UpdateTransactionRequest, now time.Time) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type transactionService struct {
	store transactionStore
	now   Clock
}

func NewTransactionService(store transactionStore, now Clock) *transactionService {
	if now == nil {
		now = SystemClock
	}
	return &transactionService{store: store, now: now}
}

func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	t := &models.Transaction{
		ID:          uuid.NewString(),
		Type:        *req.Type,
		Category:    *req.Category,
		Amount:      *req.Amount,
		Description: *req.Description,
		Date:        *req.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	log, ctx := logger.With(ctx, "transaction_id", t.ID)
	if err := s.store.Create(ctx, t); err != nil {
		log.Error("failed to create transaction", "error", err)
		return nil, err
	}

	log.Info("transaction created", "type", t.Type, "category", t.Category)
	return t, nil
}

func (s *transactionService) List(ctx context.Context) ([]*models.Transaction, error) {
	return s.store.List(ctx)
}

func (s *transactionService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return s.store.Get(ctx, id)
}

func (s *transactionService) Update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log, ctx := logger.With(ctx, "transaction_id", id)
	t, err := s.store.Update(ctx, id, req, s.now())
	if err != nil {
		return nil, err
	}

	log.Info("transaction updated")
	return t, nil
}

func (s *transactionService) Delete(ctx context.Context, id string) error {
	log, ctx := logger.With(ctx, "transaction_id", id)
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("transaction deleted")
	return nil
}
