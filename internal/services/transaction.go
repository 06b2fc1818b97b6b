package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/pkg/helpers"
	"github.com/spendlite/spendlite-backend/pkg/logger"
)

const txDateLayout = "2006-01-02"

type transactionTSStore interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	Get(ctx context.Context, uid, id string) (*models.Transaction, error)
	Create(ctx context.Context, uid string, tx *models.Transaction) error
	Update(ctx context.Context, uid string, tx *models.Transaction) error
	Delete(ctx context.Context, uid, id string) error
}

type transactionService struct {
	store transactionTSStore
}

func NewTransactionService(store transactionTSStore) *transactionService {
	return &transactionService{store: store}
}

// validateFields rejects bad input before it ever reaches the store, so the
// aggregation engine can treat a structurally invalid stored record as data
// corruption rather than user error.
func validateFields(kind string, amount float64, category, date string) error {
	switch kind {
	case models.TypeIncome, models.TypeExpense:
	default:
		return errs.NewValidationError(fmt.Sprintf("type must be %q or %q", models.TypeIncome, models.TypeExpense))
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValidationError("amount must be a finite number")
	}
	if amount < 0 {
		return errs.NewValidationError("amount must not be negative")
	}
	if strings.TrimSpace(category) == "" {
		return errs.NewValidationError("category is required")
	}
	if _, err := time.Parse(txDateLayout, date); err != nil {
		return errs.NewValidationError("date must be formatted YYYY-MM-DD")
	}
	return nil
}

func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateFields(req.Type, req.Amount, req.Category, req.Date); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &models.Transaction{
		TransactionID: uuid.New().String(),
		Type:          req.Type,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          req.Date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Create(ctx, uid, tx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("transaction created",
		"transaction_id", tx.TransactionID, "type", tx.Type, "category", tx.Category)
	return tx, nil
}

// Update is a full replace of the user-editable fields. ID and owner are
// immutable; createdAt is preserved.
func (s *transactionService) Update(ctx context.Context, uid, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := validateFields(req.Type, req.Amount, req.Category, req.Date); err != nil {
		return nil, err
	}

	tx, err := s.store.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	tx.Type = req.Type
	tx.Amount = req.Amount
	tx.Category = req.Category
	tx.Description = req.Description
	tx.Date = req.Date
	tx.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, uid, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, uid, id string) error {
	if _, err := s.store.Get(ctx, uid, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, uid, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("transaction deleted", "transaction_id", id)
	return nil
}

func (s *transactionService) Get(ctx context.Context, uid, id string) (*models.Transaction, error) {
	return s.store.Get(ctx, uid, id)
}

// List fetches the snapshot and filters it in memory. Snapshot sizes are
// personal-finance scale, and filtering client-side keeps the store query on
// the index-free fallback path.
func (s *transactionService) List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	txs, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(txs))
	search := strings.ToLower(helpers.Value(q.Search))
	for _, tx := range txs {
		if q.Type != nil && tx.Type != *q.Type {
			continue
		}
		if q.Category != nil && tx.Category != *q.Category {
			continue
		}
		if q.Date != nil && tx.Date != *q.Date {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.Description), search) &&
			!strings.Contains(strings.ToLower(tx.Category), search) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// ExportCSV renders the user's raw rows, newest first, as
// Date,Description,Category,Type,Amount.
func (s *transactionService) ExportCSV(ctx context.Context, uid string) ([]byte, error) {
	txs, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Description", "Category", "Type", "Amount"}); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		row := []string{tx.Date, tx.Description, tx.Category, tx.Type, fmt.Sprintf("%.2f", tx.Amount)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
