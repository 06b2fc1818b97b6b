package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/spendlite/spendlite-backend/internal/models"
)

func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestTransactionCRUDWithEmulator(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(emulatorClient(t))
	uid := "user-crud"

	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		TransactionID: "t1",
		Type:          models.TypeExpense,
		Amount:        12.5,
		Category:      "Food",
		Description:   "Lunch",
		Date:          "2025-01-10",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := store.Create(ctx, uid, tx); err != nil {
		t.Fatalf("create error: %v", err)
	}

	got, err := store.Get(ctx, uid, "t1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Amount != 12.5 || got.Category != "Food" {
		t.Fatalf("unexpected transaction: %+v", got)
	}

	got.Amount = 15
	if err := store.Update(ctx, uid, got); err != nil {
		t.Fatalf("update error: %v", err)
	}
	got, err = store.Get(ctx, uid, "t1")
	if err != nil {
		t.Fatalf("get after update error: %v", err)
	}
	if got.Amount != 15 {
		t.Fatalf("update not applied: %+v", got)
	}

	// Read-your-writes: delete must be reflected in the next read.
	if err := store.Delete(ctx, uid, "t1"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := store.Get(ctx, uid, "t1"); err == nil {
		t.Fatal("expected not found after delete")
	}
	txs, err := store.List(ctx, uid)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(txs))
	}
}

func TestTransactionListOrderWithEmulator(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(emulatorClient(t))
	uid := "user-list"

	for _, tx := range []models.Transaction{
		{TransactionID: "a", Type: models.TypeIncome, Amount: 100, Category: "Salary", Date: "2025-01-05"},
		{TransactionID: "b", Type: models.TypeExpense, Amount: 20, Category: "Food", Date: "2025-01-20"},
		{TransactionID: "c", Type: models.TypeExpense, Amount: 5, Category: "Food", Date: "2025-01-10"},
	} {
		tx := tx
		if err := store.Create(ctx, uid, &tx); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	txs, err := store.List(ctx, uid)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	for i := 1; i < len(txs); i++ {
		if txs[i-1].Date < txs[i].Date {
			t.Fatalf("list not date-descending: %q before %q", txs[i-1].Date, txs[i].Date)
		}
	}
}

func TestCategoryCascadesWithEmulator(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(emulatorClient(t))
	uid := "user-cascade"

	for _, tx := range []models.Transaction{
		{TransactionID: "f1", Type: models.TypeExpense, Amount: 10, Category: "Food", Date: "2025-02-01"},
		{TransactionID: "f2", Type: models.TypeExpense, Amount: 20, Category: "Food", Date: "2025-02-02"},
		{TransactionID: "s1", Type: models.TypeIncome, Amount: 500, Category: "Salary", Date: "2025-02-03"},
	} {
		tx := tx
		if err := store.Create(ctx, uid, &tx); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	updated, err := store.RenameCategory(ctx, uid, "Food", models.TypeExpense, "Groceries", models.TypeExpense)
	if err != nil {
		t.Fatalf("rename error: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 renamed, got %d", updated)
	}

	deleted, err := store.DeleteByCategory(ctx, uid, "Groceries", models.TypeExpense)
	if err != nil {
		t.Fatalf("cascade delete error: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	txs, err := store.List(ctx, uid)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(txs) != 1 || txs[0].Category != "Salary" {
		t.Fatalf("unexpected survivors: %+v", txs)
	}
}
