package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/pkg/logger"
)

type categoryTxStore interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	DeleteByCategory(ctx context.Context, uid, category, kind string) (int, error)
	RenameCategory(ctx context.Context, uid, category, kind, newCategory, newKind string) (int, error)
}

type categoryUserStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	SetCustomCategories(ctx context.Context, uid string, cats []models.Category) error
}

type categoryService struct {
	txs   categoryTxStore
	users categoryUserStore
}

func NewCategoryService(txs categoryTxStore, users categoryUserStore) *categoryService {
	return &categoryService{txs: txs, users: users}
}

// customCategories loads the user's additions. A missing profile document is
// the same as having none.
func (s *categoryService) customCategories(ctx context.Context, uid string) ([]models.Category, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return nil, nil
		}
		return nil, err
	}
	return user.CustomCategories, nil
}

// Registry returns the picker set: built-in defaults plus the user's custom
// categories. Advisory only; transactions may carry any category value.
func (s *categoryService) Registry(ctx context.Context, uid string) (dto.Registry, error) {
	custom, err := s.customCategories(ctx, uid)
	if err != nil {
		return dto.Registry{}, err
	}

	reg := dto.Registry{
		Income:  append([]string{}, models.DefaultIncomeCategories...),
		Expense: append([]string{}, models.DefaultExpenseCategories...),
	}
	for _, c := range custom {
		switch c.Type {
		case models.TypeIncome:
			if !containsName(reg.Income, c.Name) {
				reg.Income = append(reg.Income, c.Name)
			}
		case models.TypeExpense:
			if !containsName(reg.Expense, c.Name) {
				reg.Expense = append(reg.Expense, c.Name)
			}
		}
	}
	return reg, nil
}

// List reports stats per category over the categories actually in use plus
// the custom ones, so a freshly added category shows up before its first
// transaction.
func (s *categoryService) List(ctx context.Context, uid string) (dto.CategoryListResult, error) {
	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return dto.CategoryListResult{}, err
	}
	custom, err := s.customCategories(ctx, uid)
	if err != nil {
		return dto.CategoryListResult{}, err
	}

	stats := make(map[models.Category]*dto.CategoryStats)
	touch := func(c models.Category) *dto.CategoryStats {
		st, ok := stats[c]
		if !ok {
			st = &dto.CategoryStats{Name: c.Name, Type: c.Type}
			stats[c] = st
		}
		return st
	}

	for _, tx := range txs {
		st := touch(models.Category{Name: tx.Category, Type: tx.Type})
		st.TransactionCount++
		st.Total += tx.Amount
	}
	for _, c := range custom {
		touch(c)
	}

	var result dto.CategoryListResult
	for _, st := range stats {
		switch st.Type {
		case models.TypeIncome:
			result.Income = append(result.Income, *st)
		case models.TypeExpense:
			result.Expense = append(result.Expense, *st)
		}
	}
	sortStats(result.Income)
	sortStats(result.Expense)
	return result, nil
}

func (s *categoryService) Add(ctx context.Context, uid string, cat models.Category) error {
	if err := validateCategory(cat); err != nil {
		return err
	}

	reg, err := s.Registry(ctx, uid)
	if err != nil {
		return err
	}
	known := reg.Expense
	if cat.Type == models.TypeIncome {
		known = reg.Income
	}
	if containsName(known, cat.Name) {
		return errs.NewAlreadyExistsError(fmt.Sprintf("category %q already exists", cat.Name))
	}

	custom, err := s.customCategories(ctx, uid)
	if err != nil {
		return err
	}
	return s.users.SetCustomCategories(ctx, uid, append(custom, cat))
}

// Rename rewrites the category on every matching transaction and on the
// custom registry entry, keeping both in step.
func (s *categoryService) Rename(ctx context.Context, uid string, req dto.RenameCategoryRequest) (dto.RenameCategoryResult, error) {
	if err := validateCategory(models.Category{Name: req.Name, Type: req.Type}); err != nil {
		return dto.RenameCategoryResult{}, err
	}
	if err := validateCategory(models.Category{Name: req.NewName, Type: req.NewType}); err != nil {
		return dto.RenameCategoryResult{}, err
	}

	updated, err := s.txs.RenameCategory(ctx, uid, req.Name, req.Type, req.NewName, req.NewType)
	if err != nil {
		return dto.RenameCategoryResult{}, err
	}

	custom, err := s.customCategories(ctx, uid)
	if err != nil {
		return dto.RenameCategoryResult{}, err
	}
	changed := false
	for i, c := range custom {
		if c.Name == req.Name && c.Type == req.Type {
			custom[i] = models.Category{Name: req.NewName, Type: req.NewType}
			changed = true
		}
	}
	if changed {
		if err := s.users.SetCustomCategories(ctx, uid, custom); err != nil {
			return dto.RenameCategoryResult{}, err
		}
	}

	logger.FromContext(ctx).Info("category renamed",
		"from", req.Name, "to", req.NewName, "updated_transactions", updated)
	return dto.RenameCategoryResult{UpdatedTransactions: updated}, nil
}

// Delete removes the category and cascades over its transactions. The
// cascade is deliberate: a deleted category takes its records with it.
func (s *categoryService) Delete(ctx context.Context, uid string, cat models.Category) (dto.DeleteCategoryResult, error) {
	if err := validateCategory(cat); err != nil {
		return dto.DeleteCategoryResult{}, err
	}

	deleted, err := s.txs.DeleteByCategory(ctx, uid, cat.Name, cat.Type)
	if err != nil {
		return dto.DeleteCategoryResult{}, err
	}

	custom, err := s.customCategories(ctx, uid)
	if err != nil {
		return dto.DeleteCategoryResult{}, err
	}
	kept := custom[:0]
	for _, c := range custom {
		if c.Name != cat.Name || c.Type != cat.Type {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(custom) {
		if err := s.users.SetCustomCategories(ctx, uid, kept); err != nil {
			return dto.DeleteCategoryResult{}, err
		}
	}

	logger.FromContext(ctx).Info("category deleted",
		"category", cat.Name, "type", cat.Type, "deleted_transactions", deleted)
	return dto.DeleteCategoryResult{DeletedTransactions: deleted}, nil
}

func validateCategory(cat models.Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return errs.NewValidationError("category name is required")
	}
	switch cat.Type {
	case models.TypeIncome, models.TypeExpense:
		return nil
	}
	return errs.NewValidationError(fmt.Sprintf("category type must be %q or %q", models.TypeIncome, models.TypeExpense))
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func sortStats(stats []dto.CategoryStats) {
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
}
