package services

import (
	"context"
	"testing"

	"infinite-experiment/skyline/internal/db/repositories"
	"infinite-experiment/skyline/internal/models/entities"
)

func TestLedgerArchiveService_Archive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewLedgerArchiveService(db)

	sim := newTestSimulation(t, 10_000_000)
	plane, _ := sim.PurchasePlane("e175", "N1", "JFK")
	flight, _ := sim.CreateFlight(CreateFlightParams{
		FlightNumber:         "SK1",
		DepartureAirportCode: "JFK",
		ArrivalAirportCode:   "BOS",
		PlaneID:              plane.ID,
		DepartureTime:        30,
		TicketPricing:        fairTestPricing(),
	})
	cancelled, _ := sim.CreateFlight(CreateFlightParams{
		DepartureAirportCode: "BOS",
		ArrivalAirportCode:   "JFK",
		PlaneID:              plane.ID,
		DepartureTime:        900,
	})
	sim.CancelFlight(cancelled.ID)

	sim.Tick(0)
	sim.Tick(flight.ArrivalTime)
	sim.Tick(2*entities.MinutesPerDay + 1)

	snap := sim.LedgerSnapshot()
	if len(snap.FinishedFlights) != 2 {
		t.Fatalf("Expected 2 finished flights, got %d", len(snap.FinishedFlights))
	}

	added, err := svc.Archive(ctx, snap)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if added != 2 {
		t.Errorf("Expected 2 new flight logs, got %d", added)
	}

	added, err = svc.Archive(ctx, sim.LedgerSnapshot())
	if err != nil {
		t.Fatalf("second Archive failed: %v", err)
	}
	if added != 0 {
		t.Errorf("Expected nothing new on second run, got %d", added)
	}

	records, err := repositories.NewFinancialRecordRepository(db).ListRange(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	if len(records) != len(snap.FinancialHistory) {
		t.Errorf("Expected %d archived days, got %d", len(snap.FinancialHistory), len(records))
	}
}
