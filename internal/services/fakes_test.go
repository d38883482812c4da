package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/internal/models"
)

// memTransactionStore mimics the Firestore store semantics in memory.
type memTransactionStore struct {
	order     []string
	docs      map[string]models.Transaction
	createErr error
	listErr   error
}

func newMemTransactionStore() *memTransactionStore {
	return &memTransactionStore{docs: map[string]models.Transaction{}}
}

func (m *memTransactionStore) Create(_ context.Context, t *models.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.docs[t.ID]; ok {
		return errs.NewPersistenceError("Transaction creation failed", nil)
	}
	m.docs[t.ID] = *t
	m.order = append(m.order, t.ID)
	return nil
}

func (m *memTransactionStore) Get(_ context.Context, id string) (*models.Transaction, error) {
	t, ok := m.docs[id]
	if !ok {
		return nil, errs.NewNotFoundError("Transaction not found")
	}
	return &t, nil
}

func (m *memTransactionStore) List(ctx context.Context) ([]*models.Transaction, error) {
	out := make([]*models.Transaction, 0, len(m.order))
	err := m.Each(ctx, func(t *models.Transaction) error {
		out = append(out, t)
		return nil
	})
	return out, err
}

func (m *memTransactionStore) Each(_ context.Context, handle func(*models.Transaction) error) error {
	if m.listErr != nil {
		return m.listErr
	}
	for _, id := range m.order {
		t, ok := m.docs[id]
		if !ok {
			continue
		}
		if err := handle(&t); err != nil {
			return err
		}
	}
	return nil
}

func (m *memTransactionStore) Update(_ context.Context, id string, req dto.UpdateTransactionRequest, now time.Time) (*models.Transaction, error) {
	t, ok := m.docs[id]
	if !ok {
		return nil, errs.NewNotFoundError("Transaction not found")
	}
	t.Type = valueOr(req.Type, t.Type)
	t.Category = valueOr(req.Category, t.Category)
	t.Amount = valueOr(req.Amount, t.Amount)
	t.Description = valueOr(req.Description, t.Description)
	t.Date = valueOr(req.Date, t.Date)
	t.UpdatedAt = now
	m.docs[id] = t
	return &t, nil
}

func (m *memTransactionStore) Delete(_ context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return errs.NewNotFoundError("Transaction not found")
	}
	delete(m.docs, id)
	return nil
}

type memRecurringStore struct {
	order     []string
	docs      map[string]models.RecurringTransaction
	createErr error
}

func newMemRecurringStore() *memRecurringStore {
	return &memRecurringStore{docs: map[string]models.RecurringTransaction{}}
}

func (m *memRecurringStore) Create(_ context.Context, rt *models.RecurringTransaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.docs[rt.ID] = *rt
	m.order = append(m.order, rt.ID)
	return nil
}

func (m *memRecurringStore) Get(_ context.Context, id string) (*models.RecurringTransaction, error) {
	rt, ok := m.docs[id]
	if !ok {
		return nil, errs.NewNotFoundError("Recurring transaction not found")
	}
	return &rt, nil
}

func (m *memRecurringStore) List(_ context.Context) ([]*models.RecurringTransaction, error) {
	out := make([]*models.RecurringTransaction, 0, len(m.order))
	for _, id := range m.order {
		if rt, ok := m.docs[id]; ok {
			out = append(out, &rt)
		}
	}
	return out, nil
}

func (m *memRecurringStore) Update(_ context.Context, id string, req dto.UpdateRecurringRequest, now time.Time) (*models.RecurringTransaction, error) {
	rt, ok := m.docs[id]
	if !ok {
		return nil, errs.NewNotFoundError("Recurring transaction not found")
	}
	rt.Type = valueOr(req.Type, rt.Type)
	rt.Category = valueOr(req.Category, rt.Category)
	rt.Amount = valueOr(req.Amount, rt.Amount)
	rt.Description = valueOr(req.Description, rt.Description)
	rt.Frequency = valueOr(req.Frequency, rt.Frequency)
	rt.UpdatedAt = now
	m.docs[id] = rt
	return &rt, nil
}

func (m *memRecurringStore) Delete(_ context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return errs.NewNotFoundError("Recurring transaction not found")
	}
	delete(m.docs, id)
	return nil
}

// stepClock returns start and then advances one second per call.
func stepClock(start time.Time) Clock {
	current := start.Add(-time.Second)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func valueOr[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}
	return *val
}
