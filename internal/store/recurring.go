package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/internal/models"
)

const recurringNotFound = "Recurring transaction not found"

type recurringStore struct {
	client *firestore.Client
}

func NewRecurringStore(client *firestore.Client) *recurringStore {
	return &recurringStore{client: client}
}

func (s *recurringStore) collection() *firestore.CollectionRef {
	return s.client.Collection(recurringCollection)
}

// doc resolves id to a document reference, rejecting ids Firestore cannot hold.
func (s *recurringStore) doc(id string) (*firestore.DocumentRef, error) {
	if !validDocID(id) {
		return nil, errs.NewNotFoundError(recurringNotFound)
	}
	return s.collection().Doc(id), nil
}

func (s *recurringStore) Create(ctx context.Context, rt *models.RecurringTransaction) error {
	if _, err := s.collection().Doc(rt.ID).Create(ctx, rt); err != nil {
		return errs.NewPersistenceError("Recurring transaction creation failed", err)
	}
	return nil
}

func (s *recurringStore) Get(ctx context.Context, id string) (*models.RecurringTransaction, error) {
	ref, err := s.doc(id)
	if err != nil {
		return nil, err
	}
	return getDoc[models.RecurringTransaction](ctx, ref, recurringNotFound)
}

func (s *recurringStore) List(ctx context.Context) ([]*models.RecurringTransaction, error) {
	return listDocs[models.RecurringTransaction](ctx, s.collection())
}

func (s *recurringStore) Update(ctx context.Context, id string, req dto.UpdateRecurringRequest, now time.Time) (*models.RecurringTransaction, error) {
	ref, err := s.doc(id)
	if err != nil {
		return nil, err
	}
	return updateDoc[models.RecurringTransaction](ctx, ref, recurringUpdates(req, now), recurringNotFound)
}

func (s *recurringStore) Delete(ctx context.Context, id string) error {
	ref, err := s.doc(id)
	if err != nil {
		return err
	}
	return deleteDoc(ctx, ref, recurringNotFound)
}

func recurringUpdates(req dto.UpdateRecurringRequest, now time.Time) []firestore.Update {
	updates := make([]firestore.Update, 0, 6)
	if req.Type != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: *req.Type})
	}
	if req.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *req.Category})
	}
	if req.Amount != nil {
		updates = append(updates, firestore.Update{Path: "amount", Value: *req.Amount})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if req.Frequency != nil {
		updates = append(updates, firestore.Update{Path: "frequency", Value: *req.Frequency})
	}
	return append(updates, firestore.Update{Path: "updatedAt", Value: now})
}
