package gorm

import "time"

// FinancialRecord is one archived simulated day of the company ledger
type FinancialRecord struct {
	Day        int       `gorm:"column:day;primaryKey;autoIncrement:false"`
	Revenue    float64   `gorm:"column:revenue;not null"`
	Expenses   float64   `gorm:"column:expenses;not null"`
	Profit     float64   `gorm:"column:profit;not null"`
	ArchivedAt time.Time `gorm:"column:archived_at;autoUpdateTime"`
}

func (FinancialRecord) TableName() string {
	return "financial_records"
}
