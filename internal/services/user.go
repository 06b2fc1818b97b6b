package services

import (
	"context"
	"time"

	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type userService struct {
	Store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{
		Store: store,
	}
}

// Register creates the profile document on first sign-in. Authentication
// itself is Firebase's job; by the time this runs the uid is verified.
func (s *userService) Register(ctx context.Context, uid, email, name string) error {
	log := logger.FromContext(ctx)

	now := time.Now()
	user := &models.User{
		UID:       uid,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return err
	}

	log.Info("user registered", "name", name)
	return nil
}

func (s *userService) Get(ctx context.Context, uid string) (*models.User, error) {
	return s.Store.GetUser(ctx, uid)
}

// Update edits the profile's display fields. An empty field leaves the stored
// value alone.
func (s *userService) Update(ctx context.Context, uid, email, name string) (*models.User, error) {
	user, err := s.Store.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if email != "" {
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	user.UpdatedAt = time.Now()

	if err := s.Store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
