package services

import (
	"context"
	"sort"
	"time"

	"github.com/spendlite/spendlite-backend/internal/dto"
	"github.com/spendlite/spendlite-backend/internal/models"
	"github.com/spendlite/spendlite-backend/internal/report"
)

const (
	recentTransactionCount = 5
	defaultWindowDays      = 30
)

type reportTxStore interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
}

// reportService fetches a fresh snapshot per call and hands it to the pure
// aggregation functions. The reference date comes in from the caller; nothing
// below this layer reads the clock.
type reportService struct {
	txs reportTxStore
}

func NewReportService(txs reportTxStore) *reportService {
	return &reportService{txs: txs}
}

func (s *reportService) Dashboard(ctx context.Context, uid string, now time.Time) (dto.DashboardSummary, error) {
	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return dto.DashboardSummary{}, err
	}

	totals, err := report.ComputeTotals(txs)
	if err != nil {
		return dto.DashboardSummary{}, err
	}
	monthIncome, monthExpense, err := report.ComputeMonthTotals(txs, now.Year(), now.Month())
	if err != nil {
		return dto.DashboardSummary{}, err
	}
	series, err := report.ComputeDailyBalanceSeries(txs, now, defaultWindowDays)
	if err != nil {
		return dto.DashboardSummary{}, err
	}

	recent := txs
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	return dto.DashboardSummary{
		Balance:      totals.Net,
		MonthIncome:  monthIncome,
		MonthExpense: monthExpense,
		Recent:       recent,
		Series:       toBalancePoints(report.DownsampleKeyDates(series)),
	}, nil
}

func (s *reportService) Analytics(ctx context.Context, uid string, now time.Time) (dto.AnalyticsSummary, error) {
	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}

	totals, err := report.ComputeTotals(txs)
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}
	topName, topTotal, err := report.TopCategory(txs, models.TypeExpense)
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}
	breakdown, err := report.ComputeCategoryBreakdown(txs, models.TypeExpense)
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}
	months, err := report.ComputeMonthlyComparison(txs)
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}
	ytd, err := report.ComputeYearToDate(txs, now.Year())
	if err != nil {
		return dto.AnalyticsSummary{}, err
	}
	avg := report.ComputeAverages(months)

	monthsOut := make([]dto.MonthComparison, len(months))
	for i, m := range months {
		monthsOut[i] = dto.MonthComparison{Month: m.Label, Income: m.Income, Expense: m.Expense}
	}

	return dto.AnalyticsSummary{
		TopCategory:       topName,
		TopCategoryTotal:  topTotal,
		YTDIncome:         ytd.Income,
		YTDExpense:        ytd.Expense,
		AvgMonthlyIncome:  avg.Income,
		AvgMonthlyExpense: avg.Expense,
		SavingsRate:       avg.SavingsRate,
		ExpenseByCategory: rankedCategoryTotals(breakdown),
		Months:            monthsOut,
		Totals:            totals,
	}, nil
}

func (s *reportService) BalanceSeries(ctx context.Context, uid string, now time.Time, windowDays int, downsample bool) (dto.BalanceSeriesResult, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return dto.BalanceSeriesResult{}, err
	}
	series, err := report.ComputeDailyBalanceSeries(txs, now, windowDays)
	if err != nil {
		return dto.BalanceSeriesResult{}, err
	}
	if downsample {
		series = report.DownsampleKeyDates(series)
	}
	return dto.BalanceSeriesResult{
		WindowDays: windowDays,
		Series:     toBalancePoints(series),
	}, nil
}

func toBalancePoints(series []report.BalancePoint) []dto.BalancePoint {
	out := make([]dto.BalancePoint, len(series))
	for i, p := range series {
		label := p.Date.Format("Jan 2")
		if i == len(series)-1 {
			label = "Today"
		}
		out[i] = dto.BalancePoint{
			Date:    p.Date.Format("2006-01-02"),
			Label:   label,
			Balance: p.Balance,
		}
	}
	return out
}

// rankedCategoryTotals orders a breakdown for charting: largest first, names
// breaking ties so the output is stable.
func rankedCategoryTotals(breakdown map[string]float64) []dto.CategoryTotal {
	out := make([]dto.CategoryTotal, 0, len(breakdown))
	for name, total := range breakdown {
		out = append(out, dto.CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}
