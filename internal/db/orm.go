package db

import (
	"fmt"

	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var PgDB *gormlib.DB

// InitORM opens the GORM connection for driver ("sqlite" or "postgres") and
// migrates the skyline tables.
func InitORM(driver, dsn string) (*gormlib.DB, error) {
	var dialector gormlib.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := gormlib.Open(dialector, &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	PgDB = db
	logging.Info("Connected via GORM", "driver", driver)
	return db, nil
}

// Migrate creates or updates every table the server persists to.
func Migrate(db *gormlib.DB) error {
	if err := db.AutoMigrate(
		&gorm.Airport{},
		&gorm.PlaneModel{},
		&gorm.FinancialRecord{},
		&gorm.FlightLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
