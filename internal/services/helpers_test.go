package services

import (
	"bytes"
	"testing"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/data"
	"infinite-experiment/skyline/internal/db"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testCatalogs(t *testing.T) ([]entities.Airport, []entities.PlaneModel) {
	t.Helper()
	airports, err := DecodeAirports(bytes.NewReader(data.AirportsJSON))
	if err != nil {
		t.Fatalf("Failed to decode airports: %v", err)
	}
	models, err := DecodePlaneModels(bytes.NewReader(data.PlanesJSON))
	if err != nil {
		t.Fatalf("Failed to decode plane models: %v", err)
	}
	return airports, models
}

func newTestSimulation(t *testing.T, cash float64) *Simulation {
	t.Helper()
	sim := NewSimulation(SimulationOptions{
		CompanyName:  "Test Airlines",
		StartingCash: cash,
		Cache:        common.NewCacheService(3600, 600),
		Metrics:      metrics.NewMetricsRegistry(prometheus.NewRegistry()),
	})
	sim.LoadCatalogs(testCatalogs(t))
	return sim
}

func fairTestPricing() entities.TicketPricing {
	return entities.TicketPricing{Economy: 320, Business: 900, FirstClass: 1700}
}

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// every pooled connection to :memory: would otherwise see its own database
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return gdb
}
