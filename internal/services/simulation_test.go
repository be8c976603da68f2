package services

import (
	"bytes"
	"errors"
	"testing"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vmihailenco/msgpack/v5"
)

func TestSimulation_EndToEnd(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)

	plane, err := sim.PurchasePlane("e175", "N175SK", "JFK")
	if err != nil {
		t.Fatalf("PurchasePlane failed: %v", err)
	}
	if c := sim.Company(); c.Cash != 7_500_000 {
		t.Fatalf("Expected 7500000 after purchase, got %f", c.Cash)
	}
	if n := len(sim.Fleet()); n != 1 {
		t.Fatalf("Expected fleet size 1, got %d", n)
	}

	flight, err := sim.CreateFlight(CreateFlightParams{
		FlightNumber:         "SK100",
		DepartureAirportCode: "JFK",
		ArrivalAirportCode:   "LAX",
		PlaneID:              plane.ID,
		DepartureTime:        120,
		TicketPricing:        fairTestPricing(),
	})
	if err != nil {
		t.Fatalf("CreateFlight failed: %v", err)
	}

	for sim.TotalMinutes() <= flight.ArrivalTime {
		sim.Advance(entities.SpeedFast.Multiplier())
	}

	done, err := sim.Flight(flight.ID)
	if err != nil {
		t.Fatalf("Flight lookup failed: %v", err)
	}
	if done.Status != entities.FlightStatusArrived {
		t.Fatalf("Expected arrived, got %s", done.Status)
	}
	if done.Passengers.Total() == 0 || done.Revenue <= 0 {
		t.Errorf("Expected bookings and revenue, got %+v", done)
	}

	p, _ := sim.Plane(plane.ID)
	if p.Status != entities.PlaneStatusAvailable || p.CurrentAirportCode != "LAX" || p.CurrentFlightID != "" {
		t.Errorf("Expected plane available at LAX, got %+v", p)
	}

	want := 7_500_000 - done.Cost + done.Revenue
	if got := sim.Company().Cash; got != want {
		t.Errorf("Expected cash %f, got %f", want, got)
	}
}

func TestSimulation_RepeatedTickIsIdempotent(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)
	plane, _ := sim.PurchasePlane("e175", "N1", "JFK")
	flight, err := sim.CreateFlight(CreateFlightParams{
		DepartureAirportCode: "JFK",
		ArrivalAirportCode:   "BOS",
		PlaneID:              plane.ID,
		DepartureTime:        10,
		TicketPricing:        fairTestPricing(),
	})
	if err != nil {
		t.Fatalf("CreateFlight failed: %v", err)
	}

	sim.Tick(10)
	afterDeparture := sim.Company()
	sim.Tick(10)
	if again := sim.Company(); again.TotalExpenses != afterDeparture.TotalExpenses {
		t.Errorf("Cost charged twice: %f vs %f", again.TotalExpenses, afterDeparture.TotalExpenses)
	}

	sim.Tick(flight.ArrivalTime)
	afterArrival := sim.Company()
	sim.Tick(flight.ArrivalTime)
	if again := sim.Company(); again.TotalRevenue != afterArrival.TotalRevenue {
		t.Errorf("Revenue credited twice: %f vs %f", again.TotalRevenue, afterArrival.TotalRevenue)
	}
}

func TestSimulation_Commands(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)

	if _, err := sim.PurchasePlane("e175", "N1", "XXX"); !errors.Is(err, ErrUnknownAirport) {
		t.Errorf("Expected ErrUnknownAirport, got %v", err)
	}
	if c := sim.Company(); c.Cash != 10_000_000 {
		t.Errorf("Failed purchase must not charge, cash %f", c.Cash)
	}

	if _, err := sim.CancelFlight("missing"); !errors.Is(err, ErrUnknownFlight) {
		t.Errorf("Expected ErrUnknownFlight, got %v", err)
	}

	sim.SetCompanyName("  Skyline Air ")
	if name := sim.Company().Name; name != "Skyline Air" {
		t.Errorf("Expected trimmed name, got %q", name)
	}
}

func TestSimulation_QueriesReturnCopies(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)
	plane, _ := sim.PurchasePlane("e175", "N1", "JFK")
	_, err := sim.CreateSchedule(CreateScheduleParams{
		FlightNumber:         "SK1",
		DepartureAirportCode: "JFK",
		ArrivalAirportCode:   "LAX",
		PlaneID:              plane.ID,
		DepartureTimeOfDay:   600,
		DaysOfWeek:           []int{0, 1},
	})
	if err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}

	fleet := sim.Fleet()
	fleet[0].Status = entities.PlaneStatusMaintenance
	if p, _ := sim.Plane(plane.ID); p.Status != entities.PlaneStatusAvailable {
		t.Errorf("Mutating a query result leaked into the fleet")
	}

	schedules := sim.Schedules()
	schedules[0].DaysOfWeek[0] = 6
	if got := sim.Schedules()[0].DaysOfWeek[0]; got != 0 {
		t.Errorf("Mutating schedule days leaked into the ledger, got %d", got)
	}
}

func TestSimulation_QuoteRoute(t *testing.T) {
	sim := newTestSimulation(t, 0)

	q, err := sim.QuoteRoute("jfk", "lax", "e175")
	if err != nil {
		t.Fatalf("QuoteRoute failed: %v", err)
	}
	if q.From != "JFK" || q.To != "LAX" || q.DistanceNm < 2100 || q.DurationMinutes <= 0 || q.EstimatedCost <= 0 {
		t.Errorf("Unexpected quote: %+v", q)
	}
	if q.FairPricing.Economy >= q.FairPricing.Business || q.FairPricing.Business >= q.FairPricing.FirstClass {
		t.Errorf("Expected fares to rise by class, got %+v", q.FairPricing)
	}

	if _, err := sim.QuoteRoute("JFK", "LAX", "nope"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("Expected ErrUnknownModel, got %v", err)
	}
}

func TestSimulation_QuoteCachePurgedOnCatalogReload(t *testing.T) {
	sim := newTestSimulation(t, 0)
	airports, models := testCatalogs(t)

	before, err := sim.QuoteRoute("JFK", "LAX", "e175")
	if err != nil {
		t.Fatalf("QuoteRoute failed: %v", err)
	}

	for i := range models {
		if models[i].ID == "e175" {
			models[i].Speed *= 2
		}
	}
	sim.LoadCatalogs(airports, models)

	after, err := sim.QuoteRoute("JFK", "LAX", "e175")
	if err != nil {
		t.Fatalf("QuoteRoute failed: %v", err)
	}
	if after.DurationMinutes >= before.DurationMinutes {
		t.Errorf("Expected a faster model to shorten the quote, got %f then %f", before.DurationMinutes, after.DurationMinutes)
	}
}

func TestSimulation_FlightFilters(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)
	plane, _ := sim.PurchasePlane("e175", "N1", "JFK")
	first, _ := sim.CreateFlight(CreateFlightParams{DepartureAirportCode: "JFK", ArrivalAirportCode: "BOS", PlaneID: plane.ID, DepartureTime: 5})
	second, _ := sim.CreateFlight(CreateFlightParams{DepartureAirportCode: "BOS", ArrivalAirportCode: "JFK", PlaneID: plane.ID, DepartureTime: 500})
	sim.CancelFlight(second.ID)
	sim.Tick(5)

	if got := sim.Flights("in-flight"); len(got) != 1 || got[0].ID != first.ID {
		t.Errorf("Expected first flight in-flight, got %+v", got)
	}
	if got := sim.Flights("active"); len(got) != 1 {
		t.Errorf("Expected 1 active flight, got %d", len(got))
	}
	if got := sim.Flights("cancelled"); len(got) != 1 || got[0].ID != second.ID {
		t.Errorf("Expected second flight cancelled, got %+v", got)
	}
	if got := sim.Flights(""); len(got) != 2 {
		t.Errorf("Expected 2 flights, got %d", len(got))
	}
}

func TestSimulation_SaveAndLoad(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)
	plane, _ := sim.PurchasePlane("e175", "N1", "JFK")
	flight, _ := sim.CreateFlight(CreateFlightParams{
		FlightNumber:         "SK7",
		DepartureAirportCode: "JFK",
		ArrivalAirportCode:   "LAX",
		PlaneID:              plane.ID,
		DepartureTime:        30,
		TicketPricing:        fairTestPricing(),
	})
	sim.Tick(10)
	sim.Tick(60)

	var buf bytes.Buffer
	if err := sim.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved := sim.Company()

	sim.Tick(flight.ArrivalTime + 10)
	if f, _ := sim.Flight(flight.ID); f.Status != entities.FlightStatusArrived {
		t.Fatalf("Expected arrival before reload, got %s", f.Status)
	}

	if err := sim.Load(&buf); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sim.TotalMinutes() != 60 {
		t.Errorf("Expected clock restored to 60, got %f", sim.TotalMinutes())
	}
	if f, _ := sim.Flight(flight.ID); f.Status != entities.FlightStatusInFlight {
		t.Errorf("Expected flight back in the air, got %s", f.Status)
	}
	if p, _ := sim.Plane(plane.ID); p.CurrentFlightID != flight.ID {
		t.Errorf("Expected plane bound to flight after load, got %q", p.CurrentFlightID)
	}
	if c := sim.Company(); c.Cash != saved.Cash || c.TotalExpenses != saved.TotalExpenses {
		t.Errorf("Expected company restored, got %+v", c)
	}

	// the restored flight still completes
	sim.Tick(flight.ArrivalTime)
	if f, _ := sim.Flight(flight.ID); f.Status != entities.FlightStatusArrived {
		t.Errorf("Expected restored flight to arrive, got %s", f.Status)
	}
}

func TestSimulation_LoadRejectsGarbage(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)
	if err := sim.Load(bytes.NewReader([]byte("not a save"))); err == nil {
		t.Errorf("Expected decode error")
	}
	if c := sim.Company(); c.Cash != 10_000_000 {
		t.Errorf("State must be untouched after a failed load")
	}
}

func TestSimulation_SaveIsCompressedAndPlainLoads(t *testing.T) {
	sim := newTestSimulation(t, 10_000_000)
	sim.PurchasePlane("e175", "N2", "JFK")
	sim.Tick(120)

	var buf bytes.Buffer
	if err := sim.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), zstdMagic) {
		t.Errorf("Expected zstd frame header, got % x", buf.Bytes()[:4])
	}

	plain, err := msgpack.Marshal(&saveGame{Version: saveGameVersion, TotalMinutes: 42})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := sim.Load(bytes.NewReader(plain)); err != nil {
		t.Fatalf("Expected plain msgpack save to load, got %v", err)
	}
	if sim.TotalMinutes() != 42 {
		t.Errorf("Expected 42 minutes, got %f", sim.TotalMinutes())
	}
	if len(sim.Fleet()) != 0 {
		t.Errorf("Expected empty fleet from plain save, got %d", len(sim.Fleet()))
	}
}

func TestSimulation_TickMetrics(t *testing.T) {
	airports, models := testCatalogs(t)
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	sim := NewSimulation(SimulationOptions{
		StartingCash: 10_000_000,
		Cache:        common.NewCacheService(3600, 600),
		Metrics:      reg,
	})
	sim.LoadCatalogs(airports, models)

	if _, err := sim.PurchasePlane("e175", "", "JFK"); err != nil {
		t.Fatalf("PurchasePlane failed: %v", err)
	}
	sim.Advance(5)
	sim.Advance(5)

	if got := testutil.ToFloat64(reg.TicksTotal); got != 2 {
		t.Errorf("Expected 2 ticks, got %f", got)
	}
	if got := testutil.ToFloat64(reg.SimulatedMinutes); got != 10 {
		t.Errorf("Expected 10 simulated minutes, got %f", got)
	}
	if got := testutil.ToFloat64(reg.FleetSize); got != 1 {
		t.Errorf("Expected fleet size 1, got %f", got)
	}
	if got := testutil.ToFloat64(reg.CompanyCash); got != 7_500_000 {
		t.Errorf("Expected cash gauge 7500000, got %f", got)
	}
}
