package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/internal/models"
	"github.com/GregMSThompson/budget-planner/internal/recurrence"
	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

type recurringStore interface {
	Create(ctx context.Context, rt *models.RecurringTransaction) error
	Get(ctx context.Context, id string) (*models.RecurringTransaction, error)
	List(ctx context.Context) ([]*models.RecurringTransaction, error)
	Update(ctx context.Context, id string, req dto.UpdateRecurringRequest, now time.Time) (*models.RecurringTransaction, error)
	Delete(ctx context.Context, id string) error
}

type recurringService struct {
	store recurringStore
	now   Clock
}

func NewRecurringService(store recurringStore, now Clock) *recurringService {
	if now == nil {
		now = SystemClock
	}
	return &recurringService{store: store, now: now}
}

// Create stores a new recurring transaction. nextDate is computed here, from
// the creation instant, and never again.
func (s *recurringService) Create(ctx context.Context, req dto.CreateRecurringRequest) (*models.RecurringTransaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	next, err := recurrence.Next(*req.Frequency, now)
	if err != nil {
		return nil, errs.NewValidationError(err.Error())
	}

	rt := &models.RecurringTransaction{
		ID:          uuid.NewString(),
		Type:        *req.Type,
		Category:    *req.Category,
		Amount:      *req.Amount,
		Description: *req.Description,
		Frequency:   *req.Frequency,
		NextDate:    next,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	log, ctx := logger.With(ctx, "recurring_id", rt.ID)
	if err := s.store.Create(ctx, rt); err != nil {
		log.Error("failed to create recurring transaction", "error", err)
		return nil, err
	}

	log.Info("recurring transaction created", "frequency", rt.Frequency, "next_date", rt.NextDate)
	return rt, nil
}

func (s *recurringService) List(ctx context.Context) ([]*models.RecurringTransaction, error) {
	return s.store.List(ctx)
}

func (s *recurringService) Get(ctx context.Context, id string) (*models.RecurringTransaction, error) {
	return s.store.Get(ctx, id)
}

func (s *recurringService) Update(ctx context.Context, id string, req dto.UpdateRecurringRequest) (*models.RecurringTransaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log, ctx := logger.With(ctx, "recurring_id", id)
	rt, err := s.store.Update(ctx, id, req, s.now())
	if err != nil {
		return nil, err
	}

	log.Info("recurring transaction updated")
	return rt, nil
}

func (s *recurringService) Delete(ctx context.Context, id string) error {
	log, ctx := logger.With(ctx, "recurring_id", id)
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("recurring transaction deleted")
	return nil
}
