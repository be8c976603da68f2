package repositories

import (
	"context"

	"infinite-experiment/skyline/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinancialRecordRepository archives daily ledger snapshots
type FinancialRecordRepository struct {
	db *gormlib.DB
}

func NewFinancialRecordRepository(db *gormlib.DB) *FinancialRecordRepository {
	return &FinancialRecordRepository{db: db}
}

// UpsertMany inserts records, overwriting any existing row for the same day
func (r *FinancialRecordRepository) UpsertMany(ctx context.Context, records []gorm.FinancialRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"revenue", "expenses", "profit", "archived_at"}),
		}).
		Create(&records).Error
}

// ListRange returns archived days in [fromDay, toDay], oldest first
func (r *FinancialRecordRepository) ListRange(ctx context.Context, fromDay, toDay int) ([]gorm.FinancialRecord, error) {
	var records []gorm.FinancialRecord
	err := r.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", fromDay, toDay).
		Order("day ASC").
		Find(&records).Error
	return records, err
}
