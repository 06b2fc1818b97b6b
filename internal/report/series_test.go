package report

import (
	"testing"
	"time"

	"github.com/spendlite/spendlite-backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyBalanceSeriesEmptyInput(t *testing.T) {
	got, err := ComputeDailyBalanceSeries(nil, date(2024, time.March, 31), 30)
	if err != nil {
		t.Fatalf("ComputeDailyBalanceSeries error: %v", err)
	}
	if len(got) != 30 {
		t.Fatalf("expected 30 points, got %d", len(got))
	}
	for _, p := range got {
		if p.Balance != 0 {
			t.Fatalf("expected zero balance on %v, got %v", p.Date, p.Balance)
		}
	}
}

func TestDailyBalanceSeriesWindowLength(t *testing.T) {
	txs := sampleTransactions()
	for _, days := range []int{1, 5, 30, 90} {
		got, err := ComputeDailyBalanceSeries(txs, date(2024, time.February, 10), days)
		if err != nil {
			t.Fatalf("ComputeDailyBalanceSeries(%d) error: %v", days, err)
		}
		if len(got) != days {
			t.Fatalf("window %d: got %d points", days, len(got))
		}
	}
}

func TestDailyBalanceSeriesCumulative(t *testing.T) {
	// Income posts on Jan 5; every day of the Jan 5..Jan 9 window includes it,
	// since a transaction counts toward its own day's balance.
	got, err := ComputeDailyBalanceSeries(sampleTransactions(), date(2024, time.January, 9), 5)
	if err != nil {
		t.Fatalf("ComputeDailyBalanceSeries error: %v", err)
	}

	if len(got) != 5 {
		t.Fatalf("expected 5 points, got %d", len(got))
	}
	if !got[0].Date.Equal(date(2024, time.January, 5)) || !got[4].Date.Equal(date(2024, time.January, 9)) {
		t.Fatalf("window bounds mismatch: %v .. %v", got[0].Date, got[4].Date)
	}
	for i, p := range got {
		if p.Balance != 1000 {
			t.Fatalf("day %d: expected balance 1000, got %v", i, p.Balance)
		}
	}
}

func TestDailyBalanceSeriesStepsOnTransactionDays(t *testing.T) {
	got, err := ComputeDailyBalanceSeries(sampleTransactions(), date(2024, time.February, 2), 30)
	if err != nil {
		t.Fatalf("ComputeDailyBalanceSeries error: %v", err)
	}

	want := func(d time.Time) float64 {
		switch {
		case d.Before(date(2024, time.January, 5)):
			return 0
		case d.Before(date(2024, time.January, 10)):
			return 1000
		case d.Before(date(2024, time.February, 1)):
			return 800
		default:
			return 750
		}
	}
	for _, p := range got {
		if p.Balance != want(p.Date) {
			t.Fatalf("balance on %v: got %v, want %v", p.Date.Format("2006-01-02"), p.Balance, want(p.Date))
		}
	}
}

func TestDailyBalanceSeriesUpdateLaw(t *testing.T) {
	// Adding an income of 50 on day d must raise every point >= d by exactly
	// 50 and leave points < d untouched.
	base := sampleTransactions()
	added := append(sampleTransactions(), models.Transaction{
		TransactionID: "t4", Type: models.TypeIncome, Amount: 50, Category: "Bonus", Date: "2024-01-20",
	})
	asOf := date(2024, time.February, 2)

	before, err := ComputeDailyBalanceSeries(base, asOf, 30)
	if err != nil {
		t.Fatalf("series without t4: %v", err)
	}
	after, err := ComputeDailyBalanceSeries(added, asOf, 30)
	if err != nil {
		t.Fatalf("series with t4: %v", err)
	}

	cut := date(2024, time.January, 20)
	for i := range before {
		delta := after[i].Balance - before[i].Balance
		if before[i].Date.Before(cut) && delta != 0 {
			t.Fatalf("day %v shifted by %v before the added transaction", before[i].Date, delta)
		}
		if !before[i].Date.Before(cut) && delta != 50 {
			t.Fatalf("day %v shifted by %v, want 50", before[i].Date, delta)
		}
	}
}

func TestDailyBalanceSeriesRejectsBadWindow(t *testing.T) {
	if _, err := ComputeDailyBalanceSeries(nil, date(2024, time.January, 1), 0); err == nil {
		t.Fatal("expected error for zero window")
	}
}

func TestDownsampleKeyDates(t *testing.T) {
	series, err := ComputeDailyBalanceSeries(sampleTransactions(), date(2024, time.January, 31), 30)
	if err != nil {
		t.Fatalf("ComputeDailyBalanceSeries error: %v", err)
	}

	got := DownsampleKeyDates(series)

	// Jan 2..Jan 31 window: key days 5, 10, 15, 20, 25 plus the final point.
	wantDays := []int{5, 10, 15, 20, 25, 31}
	if len(got) != len(wantDays) {
		t.Fatalf("expected %d points, got %d", len(wantDays), len(got))
	}
	for i, p := range got {
		if p.Date.Day() != wantDays[i] {
			t.Fatalf("point %d: got day %d, want %d", i, p.Date.Day(), wantDays[i])
		}
	}

	// Downsampling selects a subsequence; it must not recompute.
	full := map[int]float64{}
	for _, p := range series {
		full[p.Date.Day()] = p.Balance
	}
	for _, p := range got {
		if p.Balance != full[p.Date.Day()] {
			t.Fatalf("day %d: downsampled balance %v differs from series %v", p.Date.Day(), p.Balance, full[p.Date.Day()])
		}
	}
}

func TestDownsampleKeepsSingleFinalPoint(t *testing.T) {
	// asOf on a key day: the final point must appear once, not twice.
	series, err := ComputeDailyBalanceSeries(nil, date(2024, time.March, 25), 5)
	if err != nil {
		t.Fatalf("ComputeDailyBalanceSeries error: %v", err)
	}

	got := DownsampleKeyDates(series)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
	if got[0].Date.Day() != 25 {
		t.Fatalf("expected day 25, got %d", got[0].Date.Day())
	}
}
