package store

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) txCollection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

// List returns the user's full snapshot ordered by date descending. A missing
// composite index surfaces as FailedPrecondition; in that case the unordered
// query is the universal fallback and ordering happens in memory.
func (s *transactionStore) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	txs, err := s.collect(s.txCollection(uid).OrderBy("date", firestore.Desc).Documents(ctx))
	if status.Code(err) == codes.FailedPrecondition {
		txs, err = s.collect(s.txCollection(uid).Documents(ctx))
		if err == nil {
			sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })
		}
	}
	if err != nil {
		return nil, errs.NewDatabaseError("transactions.list", err.Error())
	}
	return txs, nil
}

func (s *transactionStore) collect(it *firestore.DocumentIterator) ([]models.Transaction, error) {
	defer it.Stop()

	var txs []models.Transaction
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return txs, nil
		}
		if err != nil {
			return nil, err
		}
		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, err
		}
		tx.TransactionID = doc.Ref.ID
		txs = append(txs, tx)
	}
}

func (s *transactionStore) Get(ctx context.Context, uid, id string) (*models.Transaction, error) {
	doc, err := s.txCollection(uid).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("transaction not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("transactions.get", err.Error())
	}

	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, errs.NewDatabaseError("transactions.get", err.Error())
	}
	tx.TransactionID = doc.Ref.ID
	return &tx, nil
}

func (s *transactionStore) Create(ctx context.Context, uid string, tx *models.Transaction) error {
	if _, err := s.txCollection(uid).Doc(tx.TransactionID).Create(ctx, tx); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("transaction already exists")
		}
		return errs.NewDatabaseError("transactions.create", err.Error())
	}
	return nil
}

// Update replaces the document wholesale; partial merges would let stale
// fields survive an edit.
func (s *transactionStore) Update(ctx context.Context, uid string, tx *models.Transaction) error {
	if _, err := s.txCollection(uid).Doc(tx.TransactionID).Set(ctx, tx); err != nil {
		return errs.NewDatabaseError("transactions.update", err.Error())
	}
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, uid, id string) error {
	if _, err := s.txCollection(uid).Doc(id).Delete(ctx); err != nil {
		return errs.NewDatabaseError("transactions.delete", err.Error())
	}
	return nil
}

// DeleteByCategory removes every transaction carrying the category and kind.
// Deliberate cascade: deleting a category deletes its transactions.
func (s *transactionStore) DeleteByCategory(ctx context.Context, uid, category, kind string) (int, error) {
	refs, err := s.categoryRefs(ctx, uid, category, kind)
	if err != nil {
		return 0, errs.NewDatabaseError("transactions.deleteByCategory", err.Error())
	}
	if len(refs) == 0 {
		return 0, nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return 0, errs.NewDatabaseError("transactions.deleteByCategory", err.Error())
		}
		jobs = append(jobs, job)
	}

	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return 0, errs.NewDatabaseError("transactions.deleteByCategory", err.Error())
		}
	}
	return len(refs), nil
}

// RenameCategory rewrites the category (and kind) on every matching
// transaction in one batch.
func (s *transactionStore) RenameCategory(ctx context.Context, uid, category, kind, newCategory, newKind string) (int, error) {
	refs, err := s.categoryRefs(ctx, uid, category, kind)
	if err != nil {
		return 0, errs.NewDatabaseError("transactions.renameCategory", err.Error())
	}
	if len(refs) == 0 {
		return 0, nil
	}

	now := time.Now()
	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Update(ref, []firestore.Update{
			{Path: "category", Value: newCategory},
			{Path: "type", Value: newKind},
			{Path: "updatedAt", Value: now},
		})
		if err != nil {
			bw.End()
			return 0, errs.NewDatabaseError("transactions.renameCategory", err.Error())
		}
		jobs = append(jobs, job)
	}

	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return 0, errs.NewDatabaseError("transactions.renameCategory", err.Error())
		}
	}
	return len(refs), nil
}

func (s *transactionStore) categoryRefs(ctx context.Context, uid, category, kind string) ([]*firestore.DocumentRef, error) {
	it := s.txCollection(uid).
		Where("category", "==", category).
		Where("type", "==", kind).
		Documents(ctx)
	defer it.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return refs, nil
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, doc.Ref)
	}
}
