package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"infinite-experiment/skyline/internal/db"
	gormModels "infinite-experiment/skyline/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database backed by a temp file so gorm and sqlx can share it
func setupTestDB(t *testing.T) (*gorm.DB, string) {
	path := filepath.Join(t.TempDir(), "skyline_test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return gdb, path
}

func TestAirportRepository_ReplaceAllKeepsOrder(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewAirportRepository(gdb)
	ctx := context.Background()

	first := []gormModels.Airport{
		{Code: "LAX", Position: 1, Name: "Los Angeles", Latitude: 33.9425, Longitude: -118.408},
		{Code: "JFK", Position: 0, Name: "John F. Kennedy", Latitude: 40.6413, Longitude: -73.7781},
	}
	if err := repo.ReplaceAll(ctx, first); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	list, err := repo.ListOrdered(ctx)
	if err != nil {
		t.Fatalf("ListOrdered failed: %v", err)
	}
	if len(list) != 2 || list[0].Code != "JFK" || list[1].Code != "LAX" {
		t.Fatalf("Unexpected order: %+v", list)
	}

	// reloading replaces wholesale
	if err := repo.ReplaceAll(ctx, first[:1]); err != nil {
		t.Fatalf("second ReplaceAll failed: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 airport after reload, got %d", count)
	}

	found, err := repo.FindByCode(ctx, "lax")
	if err != nil || found == nil {
		t.Fatalf("Expected LAX, got %v / %v", found, err)
	}
	missing, err := repo.FindByCode(ctx, "ZZZ")
	if err != nil || missing != nil {
		t.Errorf("Expected nil for unknown code, got %v / %v", missing, err)
	}
}

func TestPlaneModelRepository_ReplaceAll(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewPlaneModelRepository(gdb)
	ctx := context.Background()

	models := []gormModels.PlaneModel{
		{ID: "e175", Position: 0, Name: "E175", PurchasePrice: 2_500_000},
		{ID: "a320", Position: 1, Name: "A320", PurchasePrice: 8_000_000},
	}
	if err := repo.ReplaceAll(ctx, models); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if err := repo.ReplaceAll(ctx, models); err != nil {
		t.Fatalf("ReplaceAll should be idempotent: %v", err)
	}

	list, err := repo.ListOrdered(ctx)
	if err != nil {
		t.Fatalf("ListOrdered failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != "e175" {
		t.Errorf("Unexpected models: %+v", list)
	}
}

func TestFinancialRecordRepository_UpsertOverwritesDay(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewFinancialRecordRepository(gdb)
	ctx := context.Background()

	if err := repo.UpsertMany(ctx, []gormModels.FinancialRecord{
		{Day: 0, Revenue: 100, Expenses: 50, Profit: 50},
		{Day: 1, Revenue: 10, Expenses: 20, Profit: -10},
	}); err != nil {
		t.Fatalf("UpsertMany failed: %v", err)
	}
	if err := repo.UpsertMany(ctx, []gormModels.FinancialRecord{
		{Day: 1, Revenue: 30, Expenses: 20, Profit: 10},
	}); err != nil {
		t.Fatalf("second UpsertMany failed: %v", err)
	}

	records, err := repo.ListRange(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Revenue != 30 || records[1].Profit != 10 {
		t.Errorf("Expected day 1 overwritten, got %+v", records[1])
	}
}

func TestRouteReportRepository_RouteProfitability(t *testing.T) {
	gdb, path := setupTestDB(t)
	logs := NewFlightLogRepository(gdb)
	ctx := context.Background()

	err := logs.UpsertMany(ctx, []gormModels.FlightLog{
		{ID: "f1", DepartureAirportCode: "JFK", ArrivalAirportCode: "LAX", Status: "arrived", EconomyPax: 10, Revenue: 5000, Cost: 2000},
		{ID: "f2", DepartureAirportCode: "JFK", ArrivalAirportCode: "LAX", Status: "arrived", BusinessPax: 2, Revenue: 1000, Cost: 2000},
		{ID: "f3", DepartureAirportCode: "LAX", ArrivalAirportCode: "SFO", Status: "arrived", EconomyPax: 1, Revenue: 100, Cost: 50},
		{ID: "f4", DepartureAirportCode: "LAX", ArrivalAirportCode: "SFO", Status: "cancelled"},
	})
	if err != nil {
		t.Fatalf("UpsertMany failed: %v", err)
	}

	ids, err := logs.ExistingIDs(ctx, []string{"f1", "nope"})
	if err != nil {
		t.Fatalf("ExistingIDs failed: %v", err)
	}
	if _, ok := ids["f1"]; !ok || len(ids) != 1 {
		t.Errorf("Expected only f1 to exist, got %v", ids)
	}

	sdb, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open sqlx: %v", err)
	}
	defer sdb.Close()

	rows, err := NewRouteReportRepository(sdb).RouteProfitability(ctx)
	if err != nil {
		t.Fatalf("RouteProfitability failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(rows))
	}

	top := rows[0]
	if top.Departure != "JFK" || top.Flights != 2 || top.Passengers != 12 || top.Profit != 2000 {
		t.Errorf("Unexpected top route: %+v", top)
	}
	if rows[1].Flights != 1 {
		t.Errorf("Expected cancelled flight excluded, got %+v", rows[1])
	}
}
