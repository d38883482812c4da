package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/internal/models"
)

const transactionNotFound = "Transaction not found"

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection(transactionsCollection)
}

// doc resolves id to a document reference, rejecting ids Firestore cannot hold.
func (s *transactionStore) doc(id string) (*firestore.DocumentRef, error) {
	if !validDocID(id) {
		return nil, errs.NewNotFoundError(transactionNotFound)
	}
	return s.collection().Doc(id), nil
}

func (s *transactionStore) Create(ctx context.Context, t *models.Transaction) error {
	if _, err := s.collection().Doc(t.ID).Create(ctx, t); err != nil {
		return errs.NewPersistenceError("Transaction creation failed", err)
	}
	return nil
}

func (s *transactionStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	ref, err := s.doc(id)
	if err != nil {
		return nil, err
	}
	return getDoc[models.Transaction](ctx, ref, transactionNotFound)
}

func (s *transactionStore) List(ctx context.Context) ([]*models.Transaction, error) {
	return listDocs[models.Transaction](ctx, s.collection())
}

// Each streams transactions to handle without materialising the list.
func (s *transactionStore) Each(ctx context.Context, handle func(*models.Transaction) error) error {
	return eachDoc(ctx, s.collection(), handle)
}

func (s *transactionStore) Update(ctx context.Context, id string, req dto.UpdateTransactionRequest, now time.Time) (*models.Transaction, error) {
	ref, err := s.doc(id)
	if err != nil {
		return nil, err
	}
	return updateDoc[models.Transaction](ctx, ref, transactionUpdates(req, now), transactionNotFound)
}

func (s *transactionStore) Delete(ctx context.Context, id string) error {
	ref, err := s.doc(id)
	if err != nil {
		return err
	}
	return deleteDoc(ctx, ref, transactionNotFound)
}

func transactionUpdates(req dto.UpdateTransactionRequest, now time.Time) []firestore.Update {
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
	if req.Date != nil {
		updates = append(updates, firestore.Update{Path: "date", Value: *req.Date})
	}
	return append(updates, firestore.Update{Path: "updatedAt", Value: now})
}
