package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
)

type userStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{
		Client:     client,
		Collection: client.Collection("users"),
	}
}

func (us *userStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := us.Collection.Doc(user.UID).Create(ctx, user)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError("user already registered")
	}
	if err != nil {
		return errs.NewDatabaseError("users.create", err.Error())
	}
	return nil
}

// UpdateUser replaces the document. Callers read-modify-write the full
// profile, so no merge is needed; MergeAll is only valid with map data anyway.
func (us *userStore) UpdateUser(ctx context.Context, user *models.User) error {
	if _, err := us.Collection.Doc(user.UID).Set(ctx, user); err != nil {
		return errs.NewDatabaseError("users.update", err.Error())
	}
	return nil
}

func (us *userStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	doc, err := us.Collection.Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("users.get", err.Error())
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errs.NewDatabaseError("users.get", err.Error())
	}
	return &user, nil
}

// SetCustomCategories replaces the user's custom category list. A merge write
// so the rest of the profile is untouched.
func (us *userStore) SetCustomCategories(ctx context.Context, uid string, cats []models.Category) error {
	_, err := us.Collection.Doc(uid).Set(ctx, map[string]interface{}{
		"customCategories": cats,
		"updatedAt":        time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("users.setCustomCategories", err.Error())
	}
	return nil
}
