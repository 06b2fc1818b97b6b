package handlers

import (
	"context"
	"log/slog"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/internal/response"
)

type UserService interface {
	Register(ctx context.Context, uid, email, name string) error
	Get(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, uid, email, name string) (*models.User, error)
}

type TransactionService interface {
	Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, uid, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, uid, id string) error
	Get(ctx context.Context, uid, id string) (*models.Transaction, error)
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
	ExportCSV(ctx context.Context, uid string) ([]byte, error)
}

type CategoryService interface {
	Registry(ctx context.Context, uid string) (dto.Registry, error)
	List(ctx context.Context, uid string) (dto.CategoryListResult, error)
	Add(ctx context.Context, uid string, cat models.Category) error
	Rename(ctx context.Context, uid string, req dto.RenameCategoryRequest) (dto.RenameCategoryResult, error)
	Delete(ctx context.Context, uid string, cat models.Category) (dto.DeleteCategoryResult, error)
}

type ReportService interface {
	Dashboard(ctx context.Context, uid string, now time.Time) (dto.DashboardSummary, error)
	Analytics(ctx context.Context, uid string, now time.Time) (dto.AnalyticsSummary, error)
	BalanceSeries(ctx context.Context, uid string, now time.Time, windowDays int, downsample bool) (dto.BalanceSeriesResult, error)
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         UserService
	TransactionSvc  TransactionService
	CategorySvc     CategoryService
	ReportSvc       ReportService
}
