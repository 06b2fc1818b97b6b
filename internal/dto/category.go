package dto

import "github.com/spendlite/spendlite-backend/internal/models"

// Registry is the picker set for one user: built-in defaults plus their
// custom categories, per kind.
type Registry struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// CategoryStats describes one in-use or custom category.
type CategoryStats struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	TransactionCount int     `json:"transactionCount"`
	Total            float64 `json:"total"`
}

type CategoryListResult struct {
	Income  []CategoryStats `json:"income"`
	Expense []CategoryStats `json:"expense"`
}

type CreateCategoryRequest struct {
	Category models.Category `json:"category"`
}

type RenameCategoryRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	NewName string `json:"newName"`
	NewType string `json:"newType"`
}

// DeleteCategoryResult reports the cascade: removing a category deletes every
// transaction carrying that category and kind.
type DeleteCategoryResult struct {
	DeletedTransactions int `json:"deletedTransactions"`
}

type RenameCategoryResult struct {
	UpdatedTransactions int `json:"updatedTransactions"`
}
