package services

import (
	"testing"

	"infinite-experiment/skyline/internal/models/entities"
)

func TestCompanyLedger_CashMovements(t *testing.T) {
	l := NewCompanyLedger("Test Airlines", 10_000_000, nil)

	l.DeductCash(1_000_000)
	if l.Cash() != 9_000_000 {
		t.Errorf("Expected 9000000 after deduction, got %f", l.Cash())
	}

	l.AddRevenue(500_000)
	snap := l.Snapshot()
	if snap.Cash != 9_500_000 || snap.TotalRevenue != 500_000 || snap.TotalExpenses != 1_000_000 {
		t.Errorf("Unexpected totals: %+v", snap)
	}
	if l.ProfitToday() != -500_000 {
		t.Errorf("Expected profit today -500000, got %f", l.ProfitToday())
	}
}

func TestCompanyLedger_CashMayGoNegative(t *testing.T) {
	l := NewCompanyLedger("", 100, nil)
	l.AddExpense(250)
	if l.Cash() != -150 {
		t.Errorf("Expected -150, got %f", l.Cash())
	}
}

func TestCompanyLedger_FirstTickOnlyPrimes(t *testing.T) {
	l := NewCompanyLedger("", 0, nil)
	l.AddRevenue(100)

	l.ProcessTick(entities.MinutesPerDay * 3)
	if n := len(l.Snapshot().FinancialHistory); n != 0 {
		t.Fatalf("Expected no record on first tick, got %d", n)
	}
	if l.RevenueToday() != 100 {
		t.Errorf("Accumulators should survive priming, got %f", l.RevenueToday())
	}
}

func TestCompanyLedger_RecordsCompletedDay(t *testing.T) {
	l := NewCompanyLedger("", 0, nil)
	l.ProcessTick(1)

	l.AddRevenue(300)
	l.AddExpense(100)
	l.ProcessTick(600)
	if n := len(l.Snapshot().FinancialHistory); n != 0 {
		t.Fatalf("Expected no record within the same day, got %d", n)
	}

	l.ProcessTick(entities.MinutesPerDay + 1)
	history := l.Snapshot().FinancialHistory
	if len(history) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(history))
	}
	rec := history[0]
	if rec.Date != 0 || rec.Revenue != 300 || rec.Expenses != 100 || rec.Profit != 200 {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if l.RevenueToday() != 0 || l.ExpensesToday() != 0 {
		t.Errorf("Expected daily accumulators reset")
	}
}

func TestCompanyLedger_HistoryCappedAtThirty(t *testing.T) {
	l := NewCompanyLedger("", 0, nil)
	l.ProcessTick(0)

	for day := 1; day <= 40; day++ {
		l.AddRevenue(float64(day))
		l.ProcessTick(float64(day * entities.MinutesPerDay))
	}

	history := l.Snapshot().FinancialHistory
	if len(history) != 30 {
		t.Fatalf("Expected 30 records, got %d", len(history))
	}
	if history[0].Date != 10 || history[29].Date != 39 {
		t.Errorf("Expected days 10..39, got %d..%d", history[0].Date, history[29].Date)
	}
}
