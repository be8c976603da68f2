package repositories

import (
	"context"

	"infinite-experiment/skyline/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlightLogRepository archives flights that reached a terminal status
type FlightLogRepository struct {
	db *gormlib.DB
}

func NewFlightLogRepository(db *gormlib.DB) *FlightLogRepository {
	return &FlightLogRepository{db: db}
}

// UpsertMany writes logs in batches; re-archiving a flight overwrites its row
func (r *FlightLogRepository) UpsertMany(ctx context.Context, logs []gorm.FlightLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(logs, 100).Error
}

// ExistingIDs returns which of ids are already archived
func (r *FlightLogRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	found := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var existing []string
	err := r.db.WithContext(ctx).
		Model(&gorm.FlightLog{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}
	for _, id := range existing {
		found[id] = struct{}{}
	}
	return found, nil
}

func (r *FlightLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.FlightLog{}).Count(&count).Error
	return count, err
}
