package dto

import (
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/internal/report"
)

// BalancePoint is one chart point, date pre-formatted for display.
type BalancePoint struct {
	Date    string  `json:"date"`  // YYYY-MM-DD
	Label   string  `json:"label"` // "Jan 5", or "Today" for the final point
	Balance float64 `json:"balance"`
}

// DashboardSummary backs the dashboard view: headline figures, the recent
// transactions list and the 30-day balance trend.
type DashboardSummary struct {
	Balance      float64              `json:"balance"`
	MonthIncome  float64              `json:"monthIncome"`
	MonthExpense float64              `json:"monthExpense"`
	Recent       []models.Transaction `json:"recent"`
	Series       []BalancePoint       `json:"series"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type MonthComparison struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// AnalyticsSummary backs the analytics view.
type AnalyticsSummary struct {
	TopCategory       string            `json:"topCategory"`
	TopCategoryTotal  float64           `json:"topCategoryTotal"`
	YTDIncome         float64           `json:"ytdIncome"`
	YTDExpense        float64           `json:"ytdExpense"`
	AvgMonthlyIncome  float64           `json:"avgMonthlyIncome"`
	AvgMonthlyExpense float64           `json:"avgMonthlyExpense"`
	SavingsRate       float64           `json:"savingsRate"`
	ExpenseByCategory []CategoryTotal   `json:"expenseByCategory"`
	Months            []MonthComparison `json:"months"`
	Totals            report.Totals     `json:"totals"`
}

type BalanceSeriesResult struct {
	WindowDays int            `json:"windowDays"`
	Series     []BalancePoint `json:"series"`
}
