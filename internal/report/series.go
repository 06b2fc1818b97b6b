package report

import (
	"time"

	"github.com/spendlite/spendlite-backend/internal/errs"
	"github.com/spendlite/spendlite-backend/internal/models"
)

// BalancePoint is one day of the cumulative balance series.
type BalancePoint struct {
	Date    time.Time `json:"date"`
	Balance float64   `json:"balance"`
}

// keyDays are the days of month the balance chart labels, plus the final
// "today" point. Display policy only; selection never recomputes balances.
var keyDays = map[int]bool{1: true, 5: true, 10: true, 15: true, 20: true, 25: true}

// dayOrdinal collapses a time to a comparable calendar day, ignoring
// time-of-day and location wall-clock detail.
func dayOrdinal(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// ComputeDailyBalanceSeries produces exactly windowDays points, one per
// calendar day from asOf-(windowDays-1) through asOf. Each point is the sum
// of every transaction occurring on or before that day, signed by kind. The
// balance is recomputed independently per day; at personal-finance volumes
// the O(days x transactions) scan is cheaper to reason about than an
// incremental one.
func ComputeDailyBalanceSeries(txs []models.Transaction, asOf time.Time, windowDays int) ([]BalancePoint, error) {
	if windowDays < 1 {
		return nil, errs.NewValidationError("windowDays must be at least 1")
	}

	dates := make([]int, len(txs))
	for i := range txs {
		d, err := validate(&txs[i])
		if err != nil {
			return nil, err
		}
		dates[i] = dayOrdinal(d)
	}

	series := make([]BalancePoint, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := asOf.AddDate(0, 0, -offset)
		cutoff := dayOrdinal(day)

		var balance float64
		for i := range txs {
			if dates[i] > cutoff {
				continue
			}
			switch txs[i].Type {
			case models.TypeIncome:
				balance += txs[i].Amount
			case models.TypeExpense:
				balance -= txs[i].Amount
			}
		}
		series = append(series, BalancePoint{
			Date:    time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Balance: balance,
		})
	}
	return series, nil
}

// DownsampleKeyDates selects the chart's sparse label subsequence: the 1st,
// 5th, 10th, 15th, 20th and 25th of each month plus the final point. Balance
// values are taken from the full series untouched.
func DownsampleKeyDates(series []BalancePoint) []BalancePoint {
	out := make([]BalancePoint, 0, len(series))
	for i, p := range series {
		if i == len(series)-1 || keyDays[p.Date.Day()] {
			out = append(out, p)
		}
	}
	return out
}
