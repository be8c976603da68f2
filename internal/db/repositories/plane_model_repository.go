package repositories

import (
	"context"

	"infinite-experiment/skyline/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// PlaneModelRepository handles the aircraft catalog table
type PlaneModelRepository struct {
	db *gormlib.DB
}

func NewPlaneModelRepository(db *gormlib.DB) *PlaneModelRepository {
	return &PlaneModelRepository{db: db}
}

// ListOrdered returns every model in catalog order
func (r *PlaneModelRepository) ListOrdered(ctx context.Context) ([]gorm.PlaneModel, error) {
	var models []gorm.PlaneModel
	err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error
	return models, err
}

// ReplaceAll swaps the catalog contents in one transaction
func (r *PlaneModelRepository) ReplaceAll(ctx context.Context, models []gorm.PlaneModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Where("1 = 1").Delete(&gorm.PlaneModel{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(models, 100).Error
	})
}

func (r *PlaneModelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.PlaneModel{}).Count(&count).Error
	return count, err
}
