package models

import (
	"time"
)

type User struct {
	UID              string     `firestore:"uid" json:"uid"`
	Email            string     `firestore:"email" json:"email"`
	Name             string     `firestore:"name" json:"name"`
	CustomCategories []Category `firestore:"customCategories" json:"customCategories,omitempty"`
	CreatedAt        time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
