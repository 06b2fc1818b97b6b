package services

import (
	"context"
	"errors"
	"testing"

	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/pkg/helpers"
)

type fakeUserStore struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.UID]; ok {
		return errs.NewAlreadyExistsError("user already registered")
	}
	f.users[user.UID] = user
	return nil
}

func (f *fakeUserStore) GetUser(_ context.Context, uid string) (*models.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, errs.NewNotFoundError("user not found")
	}
	return user, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.UID]; !ok {
		return errs.NewNotFoundError("user not found")
	}
	f.users[user.UID] = user
	return nil
}

func TestUserRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	if err := svc.Register(helpers.TestCtx(), "uid-1", "a@example.com", "Ada"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, err := svc.Get(helpers.TestCtx(), "uid-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if user.Email != "a@example.com" || user.Name != "Ada" {
		t.Fatalf("user mismatch: %+v", user)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}
}

func TestUserRegisterTwice(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	if err := svc.Register(helpers.TestCtx(), "uid-1", "a@example.com", "Ada"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	err := svc.Register(helpers.TestCtx(), "uid-1", "a@example.com", "Ada")
	var aerr *errs.AlreadyExistsError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
}

func TestUserUpdateKeepsUnsetFields(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	if err := svc.Register(helpers.TestCtx(), "uid-1", "a@example.com", "Ada"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, err := svc.Update(helpers.TestCtx(), "uid-1", "", "Ada L.")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if user.Name != "Ada L." {
		t.Fatalf("name not updated: %+v", user)
	}
	if user.Email != "a@example.com" {
		t.Fatalf("empty email must leave the stored value: %+v", user)
	}
}

func TestUserUpdateMissing(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Update(helpers.TestCtx(), "ghost", "x@example.com", "X")
	var nerr *errs.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
