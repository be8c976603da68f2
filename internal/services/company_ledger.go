package services

import (
	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"
)

// CompanyLedger tracks cash, lifetime totals and the in-progress day. When a
// simulated day completes its totals are pushed onto a bounded history.
type CompanyLedger struct {
	name          string
	cash          float64
	totalRevenue  float64
	totalExpenses float64
	foundedDate   float64

	history       *common.BoundedFIFO[entities.FinancialRecord]
	revenueToday  float64
	expensesToday float64

	// -1 until the first tick primes it
	lastSnapshotDay int

	metrics *metrics.MetricsRegistry
}

func NewCompanyLedger(name string, startingCash float64, m *metrics.MetricsRegistry) *CompanyLedger {
	l := &CompanyLedger{
		name:            name,
		cash:            startingCash,
		history:         common.NewBoundedFIFO[entities.FinancialRecord](constants.FinancialHistoryDays),
		lastSnapshotDay: -1,
		metrics:         m,
	}
	l.observeCash()
	return l
}

func (l *CompanyLedger) SetName(name string) {
	l.name = name
}

func (l *CompanyLedger) SetFoundedDate(totalMinutes float64) {
	l.foundedDate = totalMinutes
}

func (l *CompanyLedger) Cash() float64 {
	return l.cash
}

func (l *CompanyLedger) AddRevenue(amount float64) {
	l.cash += amount
	l.totalRevenue += amount
	l.revenueToday += amount
	l.observeCash()
}

// AddExpense charges amount unconditionally. Cash is allowed to go negative.
func (l *CompanyLedger) AddExpense(amount float64) {
	l.cash -= amount
	l.totalExpenses += amount
	l.expensesToday += amount
	l.observeCash()
}

// DeductCash is used for capital purchases and books like any other expense.
func (l *CompanyLedger) DeductCash(amount float64) {
	l.AddExpense(amount)
}

func (l *CompanyLedger) RevenueToday() float64 {
	return l.revenueToday
}

func (l *CompanyLedger) ExpensesToday() float64 {
	return l.expensesToday
}

func (l *CompanyLedger) ProfitToday() float64 {
	return l.revenueToday - l.expensesToday
}

// ProcessTick closes out the previous day once the day index moves past it.
// The first call only records the current day.
func (l *CompanyLedger) ProcessTick(totalMinutes float64) {
	currentDay := entities.DayIndex(totalMinutes)
	if l.lastSnapshotDay < 0 {
		l.lastSnapshotDay = currentDay
		return
	}
	if currentDay <= l.lastSnapshotDay {
		return
	}

	l.history.Push(entities.FinancialRecord{
		Date:     l.lastSnapshotDay,
		Revenue:  l.revenueToday,
		Expenses: l.expensesToday,
		Profit:   l.revenueToday - l.expensesToday,
	})
	l.revenueToday = 0
	l.expensesToday = 0
	l.lastSnapshotDay = currentDay
}

func (l *CompanyLedger) Snapshot() entities.Company {
	return entities.Company{
		Name:             l.name,
		Cash:             l.cash,
		TotalRevenue:     l.totalRevenue,
		TotalExpenses:    l.totalExpenses,
		FinancialHistory: l.history.Items(),
		FoundedDate:      l.foundedDate,
	}
}

func (l *CompanyLedger) Overview() entities.CompanyOverview {
	return entities.CompanyOverview{
		Company:       l.Snapshot(),
		RevenueToday:  l.revenueToday,
		ExpensesToday: l.expensesToday,
		ProfitToday:   l.ProfitToday(),
		NetWorth:      l.cash,
	}
}

type companyState struct {
	Company         entities.Company `msgpack:"company"`
	RevenueToday    float64          `msgpack:"revenue_today"`
	ExpensesToday   float64          `msgpack:"expenses_today"`
	LastSnapshotDay int              `msgpack:"last_snapshot_day"`
}

func (l *CompanyLedger) state() companyState {
	return companyState{
		Company:         l.Snapshot(),
		RevenueToday:    l.revenueToday,
		ExpensesToday:   l.expensesToday,
		LastSnapshotDay: l.lastSnapshotDay,
	}
}

func (l *CompanyLedger) restore(s companyState) {
	l.name = s.Company.Name
	l.cash = s.Company.Cash
	l.totalRevenue = s.Company.TotalRevenue
	l.totalExpenses = s.Company.TotalExpenses
	l.foundedDate = s.Company.FoundedDate
	l.history.Reset(s.Company.FinancialHistory)
	l.revenueToday = s.RevenueToday
	l.expensesToday = s.ExpensesToday
	l.lastSnapshotDay = s.LastSnapshotDay
	l.observeCash()
}

func (l *CompanyLedger) observeCash() {
	if l.metrics != nil {
		l.metrics.CompanyCash.Set(l.cash)
	}
}
