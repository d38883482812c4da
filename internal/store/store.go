package store

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/budget-planner/internal/errs"
)

// MaxListSize caps how many documents a full-collection read returns.
// Documents past the cap are silently left out.
const MaxListSize = 1000

const (
	transactionsCollection = "transactions"
	recurringCollection    = "recurring_transactions"
)

// maxDocIDBytes is Firestore's limit on a document ID.
const maxDocIDBytes = 1500

var reservedDocID = regexp.MustCompile(`^__.*__$`)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// validDocID reports whether Firestore can address id as a document in a
// collection. Ids it cannot hold can never have been stored, so lookups on
// them are answered as not found without a round trip.
func validDocID(id string) bool {
	switch {
	case id == "", id == ".", id == "..":
		return false
	case len(id) > maxDocIDBytes:
		return false
	case !utf8.ValidString(id):
		return false
	case strings.Contains(id, "/"):
		return false
	case reservedDocID.MatchString(id):
		return false
	}
	return true
}

// storeError maps a Firestore failure to the typed errors handlers expect.
func storeError(op, msg, notFoundMsg string, err error) error {
	if isNotFound(err) {
		return errs.NewNotFoundError(notFoundMsg)
	}
	return errs.NewDatabaseError(op, msg, err)
}

func getDoc[T any](ctx context.Context, ref *firestore.DocumentRef, notFoundMsg string) (*T, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, storeError("read", "failed to get document", notFoundMsg, err)
	}
	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse document data", err)
	}
	return &out, nil
}

// eachDoc streams up to MaxListSize documents of coll, in store order, to handle.
func eachDoc[T any](ctx context.Context, coll *firestore.CollectionRef, handle func(*T) error) error {
	iter := coll.Limit(MaxListSize).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return errs.NewDatabaseError("read", "failed to list "+coll.ID, err)
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			return errs.NewDatabaseError("read", "failed to parse "+coll.ID+" data", err)
		}
		if err := handle(&item); err != nil {
			return err
		}
	}
}

func listDocs[T any](ctx context.Context, coll *firestore.CollectionRef) ([]*T, error) {
	out := make([]*T, 0)
	err := eachDoc(ctx, coll, func(item *T) error {
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// updateDoc applies field-path updates; Firestore rejects them with NotFound
// when the document does not exist, so no separate existence read is needed.
func updateDoc[T any](ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update, notFoundMsg string) (*T, error) {
	if _, err := ref.Update(ctx, updates); err != nil {
		return nil, storeError("update", "failed to update document", notFoundMsg, err)
	}
	return getDoc[T](ctx, ref, notFoundMsg)
}

func deleteDoc(ctx context.Context, ref *firestore.DocumentRef, notFoundMsg string) error {
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		return storeError("delete", "failed to delete document", notFoundMsg, err)
	}
	return nil
}
