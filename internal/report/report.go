// Package report is the aggregation engine: pure reductions over one user's
// transaction snapshot into the derived values the dashboard and analytics
// views render. Nothing here touches the clock, performs I/O, or mutates its
// input; the reference date is always an explicit argument.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
)

const dateLayout = "2006-01-02"

// Totals are the headline figures: signed net balance plus per-kind sums and
// counts over the whole snapshot.
type Totals struct {
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	Net          float64 `json:"net"`
	IncomeCount  int     `json:"incomeCount"`
	ExpenseCount int     `json:"expenseCount"`
	TotalCount   int     `json:"totalCount"`
}

// MonthSummary is one calendar month's income and expense sums.
type MonthSummary struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Label   string     `json:"label"` // "Jan 2024"
	Income  float64    `json:"income"`
	Expense float64    `json:"expense"`
}

// Averages are the secondary reductions over a monthly comparison.
type Averages struct {
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	SavingsRate float64 `json:"savingsRate"` // percent; 0 when average income is 0
}

// YTD holds the year-to-date sums for one calendar year.
type YTD struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// validate checks a record's structural invariants and returns its parsed
// occurred-on date. Any violation fails the whole aggregation: a corrupt
// record must never be silently dropped from financial totals.
func validate(tx *models.Transaction) (time.Time, error) {
	switch tx.Type {
	case models.TypeIncome, models.TypeExpense:
	default:
		return time.Time{}, errs.NewInvalidRecordError(tx.TransactionID, fmt.Sprintf("unrecognized type %q", tx.Type))
	}
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return time.Time{}, errs.NewInvalidRecordError(tx.TransactionID, "amount is not a finite number")
	}
	if tx.Amount < 0 {
		return time.Time{}, errs.NewInvalidRecordError(tx.TransactionID, "amount is negative")
	}
	d, err := time.Parse(dateLayout, tx.Date)
	if err != nil {
		return time.Time{}, errs.NewInvalidRecordError(tx.TransactionID, fmt.Sprintf("unparseable date %q", tx.Date))
	}
	return d, nil
}

func validateKind(kind string) error {
	switch kind {
	case models.TypeIncome, models.TypeExpense:
		return nil
	}
	return errs.NewValidationError(fmt.Sprintf("unsupported kind %q", kind))
}

// ComputeTotals sums the snapshot by kind. An empty snapshot yields zeros.
func ComputeTotals(txs []models.Transaction) (Totals, error) {
	var t Totals
	for i := range txs {
		if _, err := validate(&txs[i]); err != nil {
			return Totals{}, err
		}
		switch txs[i].Type {
		case models.TypeIncome:
			t.Income += txs[i].Amount
			t.IncomeCount++
		case models.TypeExpense:
			t.Expense += txs[i].Amount
			t.ExpenseCount++
		}
	}
	t.Net = t.Income - t.Expense
	t.TotalCount = t.IncomeCount + t.ExpenseCount
	return t, nil
}

// ComputeCategoryBreakdown sums amounts per category over transactions of the
// given kind. The map carries no order.
func ComputeCategoryBreakdown(txs []models.Transaction, kind string) (map[string]float64, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for i := range txs {
		if _, err := validate(&txs[i]); err != nil {
			return nil, err
		}
		if txs[i].Type == kind {
			out[txs[i].Category] += txs[i].Amount
		}
	}
	return out, nil
}

// TopCategory returns the category with the largest total for the given kind.
// Ties break toward the category first encountered in input order, so the
// result is deterministic only when the caller passes a stable order. An
// empty breakdown yields ("", 0).
func TopCategory(txs []models.Transaction, kind string) (string, float64, error) {
	if err := validateKind(kind); err != nil {
		return "", 0, err
	}
	totals := make(map[string]float64)
	var top string
	var topAmount float64
	for i := range txs {
		if _, err := validate(&txs[i]); err != nil {
			return "", 0, err
		}
		if txs[i].Type != kind {
			continue
		}
		totals[txs[i].Category] += txs[i].Amount
		if totals[txs[i].Category] > topAmount {
			topAmount = totals[txs[i].Category]
			top = txs[i].Category
		}
	}
	return top, topAmount, nil
}

// ComputeMonthlyComparison groups the snapshot into per-month income/expense
// sums, one entry per distinct month present, sorted ascending.
func ComputeMonthlyComparison(txs []models.Transaction) ([]MonthSummary, error) {
	type ym struct {
		year  int
		month time.Month
	}
	byMonth := make(map[ym]*MonthSummary)
	for i := range txs {
		d, err := validate(&txs[i])
		if err != nil {
			return nil, err
		}
		key := ym{d.Year(), d.Month()}
		m, ok := byMonth[key]
		if !ok {
			m = &MonthSummary{
				Year:  key.year,
				Month: key.month,
				Label: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			}
			byMonth[key] = m
		}
		switch txs[i].Type {
		case models.TypeIncome:
			m.Income += txs[i].Amount
		case models.TypeExpense:
			m.Expense += txs[i].Amount
		}
	}

	out := make([]MonthSummary, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// ComputeAverages reduces a monthly comparison to per-month averages and the
// savings rate. A zero average income yields rate 0, never NaN or Inf.
func ComputeAverages(months []MonthSummary) Averages {
	var a Averages
	if len(months) == 0 {
		return a
	}
	for _, m := range months {
		a.Income += m.Income
		a.Expense += m.Expense
	}
	a.Income /= float64(len(months))
	a.Expense /= float64(len(months))
	if a.Income > 0 {
		a.SavingsRate = (a.Income - a.Expense) / a.Income * 100
	}
	return a
}

// ComputeMonthTotals sums income and expense for one calendar month.
func ComputeMonthTotals(txs []models.Transaction, year int, month time.Month) (income, expense float64, err error) {
	for i := range txs {
		d, err := validate(&txs[i])
		if err != nil {
			return 0, 0, err
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		switch txs[i].Type {
		case models.TypeIncome:
			income += txs[i].Amount
		case models.TypeExpense:
			expense += txs[i].Amount
		}
	}
	return income, expense, nil
}

// ComputeYearToDate sums income and expense restricted to the given year.
func ComputeYearToDate(txs []models.Transaction, year int) (YTD, error) {
	var y YTD
	for i := range txs {
		d, err := validate(&txs[i])
		if err != nil {
			return YTD{}, err
		}
		if d.Year() != year {
			continue
		}
		switch txs[i].Type {
		case models.TypeIncome:
			y.Income += txs[i].Amount
		case models.TypeExpense:
			y.Expense += txs[i].Amount
		}
	}
	return y, nil
}
