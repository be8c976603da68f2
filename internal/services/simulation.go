package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"
	"infinite-experiment/skyline/internal/pricing"

	"github.com/brunoga/deep"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	quoteCacheSize = 256
	quoteCacheTTL  = time.Hour
)

// RouteQuote previews a route for a given model before any flight exists.
type RouteQuote struct {
	From            string                 `json:"from"`
	To              string                 `json:"to"`
	ModelID         string                 `json:"modelId"`
	DistanceNm      float64                `json:"distanceNm"`
	DurationMinutes float64                `json:"durationMinutes"`
	EstimatedCost   float64                `json:"estimatedCost"`
	FairPricing     entities.TicketPricing `json:"fairPricing"`
}

// LedgerSnapshot is what gets archived: completed days and finished flights.
type LedgerSnapshot struct {
	TotalMinutes     float64
	FinancialHistory []entities.FinancialRecord
	FinishedFlights  []entities.Flight
}

// Simulation owns every component and serialises access to them. A tick
// holds the lock for its whole duration, so no command or query ever observes
// a partially applied tick. Everything returned to callers is a copy.
type Simulation struct {
	mu           sync.Mutex
	totalMinutes float64

	directory *AirportDirectory
	fleet     *FleetRegistry
	flights   *FlightLedger
	bookings  *BookingEngine
	company   *CompanyLedger

	// quotes only depend on the catalogs, so they are purged on LoadCatalogs
	quotes *expirable.LRU[string, RouteQuote]

	metrics *metrics.MetricsRegistry
}

type SimulationOptions struct {
	CompanyName  string
	StartingCash float64
	Cache        common.CacheInterface
	Metrics      *metrics.MetricsRegistry
}

func NewSimulation(opts SimulationOptions) *Simulation {
	company := NewCompanyLedger(opts.CompanyName, opts.StartingCash, opts.Metrics)
	directory := NewAirportDirectory(opts.Cache, opts.Metrics)
	fleet := NewFleetRegistry(company, opts.Metrics)
	flights := NewFlightLedger(directory, fleet, company, opts.Metrics)

	return &Simulation{
		directory: directory,
		fleet:     fleet,
		flights:   flights,
		bookings:  NewBookingEngine(flights, fleet, directory, opts.Metrics),
		company:   company,
		quotes:    expirable.NewLRU[string, RouteQuote](quoteCacheSize, nil, quoteCacheTTL),
		metrics:   opts.Metrics,
	}
}

// LoadCatalogs replaces the airport and aircraft reference tables.
func (s *Simulation) LoadCatalogs(airports []entities.Airport, models []entities.PlaneModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory.Load(airports)
	s.fleet.LoadCatalog(models)
	s.quotes.Purge()
}

// Tick runs one processing pass at totalMinutes: flights, then bookings,
// then the company ledger.
func (s *Simulation) Tick(totalMinutes float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickLocked(totalMinutes)
}

// Advance moves simulated time forward by delta minutes and ticks at the new
// total, which it returns.
func (s *Simulation) Advance(delta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickLocked(s.totalMinutes + delta)
	return s.totalMinutes
}

func (s *Simulation) tickLocked(totalMinutes float64) {
	start := time.Now()
	s.totalMinutes = totalMinutes

	s.flights.ProcessTick(totalMinutes)
	s.bookings.ProcessTick(totalMinutes)
	s.company.ProcessTick(totalMinutes)

	if s.metrics != nil {
		s.metrics.TicksTotal.Inc()
		s.metrics.TickDuration.Observe(time.Since(start).Seconds())
		s.metrics.SimulatedMinutes.Set(totalMinutes)
	}
}

func (s *Simulation) TotalMinutes() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalMinutes
}

func (s *Simulation) Time() entities.GameTime {
	return entities.NewGameTime(s.TotalMinutes())
}

// Commands

// PurchasePlane buys a plane of modelID parked at airportCode.
func (s *Simulation) PurchasePlane(modelID, registration, airportCode string) (entities.OwnedPlane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directory.GetByCode(airportCode); !ok {
		return entities.OwnedPlane{}, fmt.Errorf("%w: %s", ErrUnknownAirport, airportCode)
	}
	plane, err := s.fleet.Purchase(modelID, registration, airportCode)
	if err != nil {
		return entities.OwnedPlane{}, err
	}
	return *plane, nil
}

func (s *Simulation) CreateFlight(p CreateFlightParams) (entities.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.flights.CreateFlight(p)
	if err != nil {
		return entities.Flight{}, err
	}
	return *f, nil
}

// CancelFlight reports false without error when the flight already left.
func (s *Simulation) CancelFlight(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flights.Get(id); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownFlight, id)
	}
	return s.flights.CancelFlight(id), nil
}

func (s *Simulation) CreateSchedule(p CreateScheduleParams) (entities.FlightSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, err := s.flights.CreateSchedule(p)
	if err != nil {
		return entities.FlightSchedule{}, err
	}
	return deep.MustCopy(*sc), nil
}

func (s *Simulation) SetScheduleEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flights.SetScheduleEnabled(id, enabled)
}

func (s *Simulation) SetCompanyName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company.SetName(strings.TrimSpace(name))
}

// Queries

func (s *Simulation) Airports(query string) []entities.Airport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.Search(query)
}

func (s *Simulation) AirportsByDemand() []entities.Airport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.SortedByDemand()
}

func (s *Simulation) Airport(code string) (entities.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.directory.GetByCode(code)
	if !ok {
		return entities.Airport{}, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	return a, nil
}

// QuoteRoute prices a route for modelID without creating anything.
func (s *Simulation) QuoteRoute(from, to, modelID string) (RouteQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(from) + "|" + strings.ToUpper(to) + "|" + modelID
	if q, ok := s.quotes.Get(key); ok {
		return q, nil
	}

	model, ok := s.fleet.GetModel(modelID)
	if !ok {
		return RouteQuote{}, fmt.Errorf("%w: %s", ErrUnknownModel, modelID)
	}
	dep, arr, distance, err := s.flights.resolveRoute(from, to, s.directory.Route)
	if err != nil {
		return RouteQuote{}, err
	}
	duration, err := durationFor(distance, model)
	if err != nil {
		return RouteQuote{}, err
	}

	q := RouteQuote{
		From:            dep.Code,
		To:              arr.Code,
		ModelID:         model.ID,
		DistanceNm:      distance,
		DurationMinutes: duration,
		EstimatedCost:   distance*model.OperatingCostPerNm + dep.LandingFee + arr.LandingFee,
		FairPricing:     pricing.FairPricing(distance),
	}
	s.quotes.Add(key, q)
	return q, nil
}

// FairPricing is the market fare on a route for every seat class.
func (s *Simulation) FairPricing(from, to string) (entities.TicketPricing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, distance, err := s.flights.resolveRoute(from, to, s.directory.Route)
	if err != nil {
		return entities.TicketPricing{}, err
	}
	return pricing.FairPricing(distance), nil
}

func (s *Simulation) Models() []entities.PlaneModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fleet.Models()
}

func (s *Simulation) Fleet() []entities.OwnedPlane {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fleet.List()
}

func (s *Simulation) AvailablePlanes(airportCode string) []entities.OwnedPlane {
	s.mu.Lock()
	defer s.mu.Unlock()

	if airportCode == "" {
		return s.fleet.Available()
	}
	return s.fleet.AtAirport(airportCode)
}

func (s *Simulation) Plane(id string) (entities.OwnedPlane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.fleet.GetPlane(id)
	if !ok {
		return entities.OwnedPlane{}, fmt.Errorf("%w: %s", ErrUnknownPlane, id)
	}
	return *p, nil
}

// Flights lists flights, optionally filtered by status. "active" selects
// scheduled and in-flight flights together.
func (s *Simulation) Flights(status string) []entities.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch status {
	case "":
		return s.flights.List()
	case "active":
		return s.flights.Active()
	}
	return s.flights.ByStatus(entities.FlightStatus(status))
}

func (s *Simulation) Flight(id string) (entities.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights.Get(id)
	if !ok {
		return entities.Flight{}, fmt.Errorf("%w: %s", ErrUnknownFlight, id)
	}
	return *f, nil
}

func (s *Simulation) Schedules() []entities.FlightSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deep.MustCopy(s.flights.Schedules())
}

func (s *Simulation) Company() entities.CompanyOverview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company.Overview()
}

// LedgerSnapshot collects the archivable part of the state in one locked read.
func (s *Simulation) LedgerSnapshot() LedgerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return LedgerSnapshot{
		TotalMinutes:     s.totalMinutes,
		FinancialHistory: s.company.Snapshot().FinancialHistory,
		FinishedFlights:  s.flights.Terminal(),
	}
}
