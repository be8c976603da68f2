package entities

// FinancialRecord summarises one completed simulated day. Date is the
// zero-based day index.
type FinancialRecord struct {
	Date     int     `json:"date" msgpack:"date"`
	Revenue  float64 `json:"revenue" msgpack:"revenue"`
	Expenses float64 `json:"expenses" msgpack:"expenses"`
	Profit   float64 `json:"profit" msgpack:"profit"`
}

type Company struct {
	Name             string            `json:"name" msgpack:"name"`
	Cash             float64           `json:"cash" msgpack:"cash"`
	TotalRevenue     float64           `json:"totalRevenue" msgpack:"total_revenue"`
	TotalExpenses    float64           `json:"totalExpenses" msgpack:"total_expenses"`
	FinancialHistory []FinancialRecord `json:"financialHistory" msgpack:"financial_history"`
	FoundedDate      float64           `json:"foundedDate" msgpack:"founded_date"`
}

// CompanyOverview is the company plus its in-progress day.
type CompanyOverview struct {
	Company
	RevenueToday  float64 `json:"revenueToday"`
	ExpensesToday float64 `json:"expensesToday"`
	ProfitToday   float64 `json:"profitToday"`
	NetWorth      float64 `json:"netWorth"`
}
