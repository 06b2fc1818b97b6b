package services

import (
	"context"
	"errors"
	"testing"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/pkg/helpers"
)

// --- Fakes ---

type fakeCategoryTxStore struct {
	txs        []models.Transaction
	renamed    int
	deleted    int
	lastRename []string
	lastDelete []string
}

func (f *fakeCategoryTxStore) List(_ context.Context, _ string) ([]models.Transaction, error) {
	return f.txs, nil
}

func (f *fakeCategoryTxStore) DeleteByCategory(_ context.Context, _, category, kind string) (int, error) {
	f.lastDelete = []string{category, kind}
	return f.deleted, nil
}

func (f *fakeCategoryTxStore) RenameCategory(_ context.Context, _, category, kind, newCategory, newKind string) (int, error) {
	f.lastRename = []string{category, kind, newCategory, newKind}
	return f.renamed, nil
}

type fakeCategoryUserStore struct {
	user    *models.User
	saved   []models.Category
	saveErr error
}

func (f *fakeCategoryUserStore) GetUser(_ context.Context, _ string) (*models.User, error) {
	if f.user == nil {
		return nil, errs.NewNotFoundError("user not found")
	}
	return f.user, nil
}

func (f *fakeCategoryUserStore) SetCustomCategories(_ context.Context, _ string, cats []models.Category) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = cats
	if f.user != nil {
		f.user.CustomCategories = cats
	}
	return nil
}

// --- Tests ---

func TestCategoryRegistryMergesDefaultsAndCustom(t *testing.T) {
	users := &fakeCategoryUserStore{user: &models.User{
		UID: "user",
		CustomCategories: []models.Category{
			{Name: "Pets", Type: models.TypeExpense},
			{Name: "Dividends", Type: models.TypeIncome},
			{Name: "Food", Type: models.TypeExpense}, // already a default, no dupe
		},
	}}
	svc := NewCategoryService(&fakeCategoryTxStore{}, users)

	reg, err := svc.Registry(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}

	if !containsName(reg.Expense, "Pets") || !containsName(reg.Income, "Dividends") {
		t.Fatalf("custom categories missing: %+v", reg)
	}
	food := 0
	for _, n := range reg.Expense {
		if n == "Food" {
			food++
		}
	}
	if food != 1 {
		t.Fatalf("expected Food exactly once, got %d", food)
	}
}

func TestCategoryRegistryNoProfileDoc(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryTxStore{}, &fakeCategoryUserStore{})

	reg, err := svc.Registry(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	if len(reg.Income) != len(models.DefaultIncomeCategories) {
		t.Fatalf("expected defaults only, got %+v", reg.Income)
	}
}

func TestCategoryListStats(t *testing.T) {
	txs := &fakeCategoryTxStore{txs: []models.Transaction{
		{TransactionID: "t1", Type: models.TypeExpense, Amount: 30, Category: "Food", Date: "2025-01-01"},
		{TransactionID: "t2", Type: models.TypeExpense, Amount: 20, Category: "Food", Date: "2025-01-02"},
		{TransactionID: "t3", Type: models.TypeIncome, Amount: 900, Category: "Salary", Date: "2025-01-03"},
	}}
	users := &fakeCategoryUserStore{user: &models.User{
		UID:              "user",
		CustomCategories: []models.Category{{Name: "Pets", Type: models.TypeExpense}},
	}}
	svc := NewCategoryService(txs, users)

	got, err := svc.List(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(got.Income) != 1 || got.Income[0].Name != "Salary" || got.Income[0].Total != 900 {
		t.Fatalf("income stats mismatch: %+v", got.Income)
	}
	if len(got.Expense) != 2 {
		t.Fatalf("expected Food and unused Pets, got %+v", got.Expense)
	}
	byName := map[string]dto.CategoryStats{}
	for _, st := range got.Expense {
		byName[st.Name] = st
	}
	if byName["Food"].TransactionCount != 2 || byName["Food"].Total != 50 {
		t.Fatalf("food stats mismatch: %+v", byName["Food"])
	}
	if byName["Pets"].TransactionCount != 0 {
		t.Fatalf("unused custom category should have zero stats: %+v", byName["Pets"])
	}
}

func TestCategoryAdd(t *testing.T) {
	users := &fakeCategoryUserStore{user: &models.User{UID: "user"}}
	svc := NewCategoryService(&fakeCategoryTxStore{}, users)

	if err := svc.Add(helpers.TestCtx(), "user", models.Category{Name: "Pets", Type: models.TypeExpense}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if len(users.saved) != 1 || users.saved[0].Name != "Pets" {
		t.Fatalf("custom category not saved: %+v", users.saved)
	}
}

func TestCategoryAddDuplicate(t *testing.T) {
	users := &fakeCategoryUserStore{user: &models.User{UID: "user"}}
	svc := NewCategoryService(&fakeCategoryTxStore{}, users)

	err := svc.Add(helpers.TestCtx(), "user", models.Category{Name: "Food", Type: models.TypeExpense})
	var aerr *errs.AlreadyExistsError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
}

func TestCategoryRenameCascades(t *testing.T) {
	txs := &fakeCategoryTxStore{renamed: 3}
	users := &fakeCategoryUserStore{user: &models.User{
		UID:              "user",
		CustomCategories: []models.Category{{Name: "Pets", Type: models.TypeExpense}},
	}}
	svc := NewCategoryService(txs, users)

	got, err := svc.Rename(helpers.TestCtx(), "user", dto.RenameCategoryRequest{
		Name: "Pets", Type: models.TypeExpense, NewName: "Animals", NewType: models.TypeExpense,
	})
	if err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	if got.UpdatedTransactions != 3 {
		t.Fatalf("expected 3 updated, got %d", got.UpdatedTransactions)
	}
	want := []string{"Pets", "expense", "Animals", "expense"}
	for i, v := range want {
		if txs.lastRename[i] != v {
			t.Fatalf("rename args mismatch: %v", txs.lastRename)
		}
	}
	if len(users.saved) != 1 || users.saved[0].Name != "Animals" {
		t.Fatalf("registry entry not renamed: %+v", users.saved)
	}
}

func TestCategoryDeleteCascades(t *testing.T) {
	txs := &fakeCategoryTxStore{deleted: 2}
	users := &fakeCategoryUserStore{user: &models.User{
		UID:              "user",
		CustomCategories: []models.Category{{Name: "Pets", Type: models.TypeExpense}},
	}}
	svc := NewCategoryService(txs, users)

	got, err := svc.Delete(helpers.TestCtx(), "user", models.Category{Name: "Pets", Type: models.TypeExpense})
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if got.DeletedTransactions != 2 {
		t.Fatalf("expected 2 deleted, got %d", got.DeletedTransactions)
	}
	if len(users.saved) != 0 {
		t.Fatalf("registry entry not removed: %+v", users.saved)
	}
}

func TestCategoryValidation(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryTxStore{}, &fakeCategoryUserStore{})

	err := svc.Add(helpers.TestCtx(), "user", models.Category{Name: "", Type: models.TypeExpense})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty name, got %v", err)
	}

	err = svc.Add(helpers.TestCtx(), "user", models.Category{Name: "Stuff", Type: "transfer"})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for bad type, got %v", err)
	}
}
