package services

import (
	"fmt"
	"sort"
	"strings"

	"infinite-experiment/skyline/internal/geo"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"

	"github.com/google/uuid"
)

type CreateFlightParams struct {
	FlightNumber         string
	DepartureAirportCode string
	ArrivalAirportCode   string
	PlaneID              string
	DepartureTime        float64
	TicketPricing        entities.TicketPricing
	ScheduleID           string
}

type CreateScheduleParams struct {
	FlightNumber         string
	DepartureAirportCode string
	ArrivalAirportCode   string
	PlaneID              string
	DepartureTimeOfDay   float64
	DaysOfWeek           []int
	TicketPricing        entities.TicketPricing
}

// FlightLedger owns flights and recurring schedules and drives the flight
// state machine: scheduled -> in-flight -> arrived, or scheduled -> cancelled.
type FlightLedger struct {
	flights     []*entities.Flight
	flightIndex map[string]*entities.Flight

	schedules     []*entities.FlightSchedule
	scheduleIndex map[string]*entities.FlightSchedule

	// last day index for which schedules were stamped, -1 before the first tick
	lastScheduleDay int

	directory *AirportDirectory
	fleet     *FleetRegistry
	company   *CompanyLedger
	metrics   *metrics.MetricsRegistry
}

func NewFlightLedger(directory *AirportDirectory, fleet *FleetRegistry, company *CompanyLedger, m *metrics.MetricsRegistry) *FlightLedger {
	return &FlightLedger{
		flightIndex:     map[string]*entities.Flight{},
		scheduleIndex:   map[string]*entities.FlightSchedule{},
		lastScheduleDay: -1,
		directory:       directory,
		fleet:           fleet,
		company:         company,
		metrics:         m,
	}
}

// CreateFlight books a new scheduled flight. The cost basis (distance based
// operating cost plus both landing fees) is settled here and never changes.
func (l *FlightLedger) CreateFlight(p CreateFlightParams) (*entities.Flight, error) {
	return l.createFlight(p, l.directory.Route)
}

func (l *FlightLedger) createFlight(p CreateFlightParams, route routeFunc) (*entities.Flight, error) {
	model, ok := l.fleet.ModelOf(p.PlaneID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlane, p.PlaneID)
	}
	if err := validatePricing(p.TicketPricing); err != nil {
		return nil, err
	}

	dep, arr, distance, err := l.resolveRoute(p.DepartureAirportCode, p.ArrivalAirportCode, route)
	if err != nil {
		return nil, err
	}

	duration, err := durationFor(distance, model)
	if err != nil {
		return nil, err
	}

	flight := &entities.Flight{
		ID:                   uuid.NewString(),
		FlightNumber:         p.FlightNumber,
		DepartureAirportCode: dep.Code,
		ArrivalAirportCode:   arr.Code,
		PlaneID:              p.PlaneID,
		DepartureTime:        p.DepartureTime,
		ArrivalTime:          p.DepartureTime + duration,
		TicketPricing:        p.TicketPricing,
		Status:               entities.FlightStatusScheduled,
		Cost:                 distance*model.OperatingCostPerNm + dep.LandingFee + arr.LandingFee,
		DistanceNm:           distance,
		ScheduleID:           p.ScheduleID,
	}

	l.flights = append(l.flights, flight)
	l.flightIndex[flight.ID] = flight

	logging.Debug("Flight created",
		"flight_id", flight.ID,
		"flight_number", flight.FlightNumber,
		"route", flight.DepartureAirportCode+"-"+flight.ArrivalAirportCode,
		"departure", flight.DepartureTime,
		"arrival", flight.ArrivalTime,
		"cost", flight.Cost,
	)
	return flight, nil
}

// CancelFlight cancels a flight that has not departed yet. It reports false
// and changes nothing for any other flight.
func (l *FlightLedger) CancelFlight(id string) bool {
	f, ok := l.flightIndex[id]
	if !ok || f.Status != entities.FlightStatusScheduled {
		return false
	}

	l.transition(f, entities.FlightStatusCancelled)

	// a plane flying another leg keeps its status
	if plane, ok := l.fleet.GetPlane(f.PlaneID); ok && (plane.CurrentFlightID == "" || plane.CurrentFlightID == f.ID) {
		l.fleet.SetStatus(f.PlaneID, entities.PlaneStatusAvailable)
		l.fleet.ReleaseFlight(f.PlaneID)
	}
	return true
}

// ProcessTick runs departures and arrivals for every flight in creation
// order, then stamps out schedules for any day index entered since the last
// call. Repeating a tick at the same time is a no-op.
func (l *FlightLedger) ProcessTick(totalMinutes float64) {
	for _, f := range l.flights {
		if f.Status == entities.FlightStatusScheduled && totalMinutes >= f.DepartureTime {
			l.depart(f, totalMinutes)
		}
		if f.Status == entities.FlightStatusInFlight && totalMinutes >= f.ArrivalTime {
			l.arrive(f)
		}
	}

	l.instantiateSchedules(totalMinutes)
}

func (l *FlightLedger) depart(f *entities.Flight, totalMinutes float64) {
	plane, ok := l.fleet.GetPlane(f.PlaneID)
	if ok && plane.CurrentFlightID != "" && plane.CurrentFlightID != f.ID {
		// the previous leg lands within this tick but sits later in creation order
		if prev, found := l.flightIndex[plane.CurrentFlightID]; found &&
			prev.Status == entities.FlightStatusInFlight && totalMinutes >= prev.ArrivalTime {
			l.arrive(prev)
		}
	}
	if ok && plane.CurrentFlightID != "" && plane.CurrentFlightID != f.ID {
		logging.Warn("Plane still bound to another flight, cancelling departure",
			"flight_id", f.ID,
			"flight_number", f.FlightNumber,
			"plane_id", f.PlaneID,
			"current_flight_id", plane.CurrentFlightID,
		)
		l.transition(f, entities.FlightStatusCancelled)
		return
	}

	l.transition(f, entities.FlightStatusInFlight)
	if ok {
		l.fleet.SetStatus(f.PlaneID, entities.PlaneStatusInFlight)
		l.fleet.BindFlight(f.PlaneID, f.ID)
	}
	l.company.AddExpense(f.Cost)
}

func (l *FlightLedger) arrive(f *entities.Flight) {
	l.transition(f, entities.FlightStatusArrived)
	if _, ok := l.fleet.GetPlane(f.PlaneID); ok {
		l.fleet.SetStatus(f.PlaneID, entities.PlaneStatusAvailable)
		l.fleet.UpdateLocation(f.PlaneID, f.ArrivalAirportCode)
		l.fleet.ReleaseFlight(f.PlaneID)
		l.fleet.AddFlightHours(f.PlaneID, f.DurationMinutes()/60)
	}

	revenue := 0.0
	for _, class := range entities.SeatClasses {
		revenue += float64(f.Passengers.Get(class)) * f.TicketPricing.Get(class)
	}
	f.Revenue = revenue
	l.company.AddRevenue(revenue)
}

func (l *FlightLedger) transition(f *entities.Flight, to entities.FlightStatus) {
	f.Status = to
	if l.metrics != nil {
		l.metrics.FlightTransitions.WithLabelValues(string(to)).Inc()
	}
}

func (l *FlightLedger) instantiateSchedules(totalMinutes float64) {
	day := entities.DayIndex(totalMinutes)
	if l.lastScheduleDay < 0 {
		// first tick enters the current day only
		l.lastScheduleDay = day - 1
	}

	for d := l.lastScheduleDay + 1; d <= day; d++ {
		dayOfWeek := d % 7
		dayStart := float64(d * entities.MinutesPerDay)
		for _, s := range l.schedules {
			if !s.Enabled || !s.RunsOn(dayOfWeek) {
				continue
			}
			// stamped in process so a remote cache is never hit mid-tick
			_, err := l.createFlight(CreateFlightParams{
				FlightNumber:         s.FlightNumber,
				DepartureAirportCode: s.DepartureAirportCode,
				ArrivalAirportCode:   s.ArrivalAirportCode,
				PlaneID:              s.PlaneID,
				DepartureTime:        dayStart + s.DepartureTimeOfDay,
				TicketPricing:        s.TicketPricing,
				ScheduleID:           s.ID,
			}, l.directory.GreatCircle)
			if err != nil {
				logging.Warn("Failed to instantiate scheduled flight",
					"schedule_id", s.ID,
					"flight_number", s.FlightNumber,
					"day", d,
					"error", err,
				)
			}
		}
	}

	if day > l.lastScheduleDay {
		l.lastScheduleDay = day
	}
}

// CreateSchedule registers an enabled weekly template. Days of week are
// normalised into 0..6 and deduplicated.
func (l *FlightLedger) CreateSchedule(p CreateScheduleParams) (*entities.FlightSchedule, error) {
	if _, ok := l.fleet.GetPlane(p.PlaneID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlane, p.PlaneID)
	}
	if err := validatePricing(p.TicketPricing); err != nil {
		return nil, err
	}
	dep, arr, _, err := l.resolveRoute(p.DepartureAirportCode, p.ArrivalAirportCode, l.directory.Route)
	if err != nil {
		return nil, err
	}

	tod := p.DepartureTimeOfDay
	if tod < 0 || tod >= entities.MinutesPerDay {
		return nil, fmt.Errorf("%w: departure time of day %.0f outside 0..%d", ErrInvalidSchedule, tod, entities.MinutesPerDay-1)
	}

	s := &entities.FlightSchedule{
		ID:                   uuid.NewString(),
		FlightNumber:         p.FlightNumber,
		DepartureAirportCode: dep.Code,
		ArrivalAirportCode:   arr.Code,
		PlaneID:              p.PlaneID,
		DepartureTimeOfDay:   tod,
		DaysOfWeek:           normaliseDays(p.DaysOfWeek),
		TicketPricing:        p.TicketPricing,
		Enabled:              true,
	}
	l.schedules = append(l.schedules, s)
	l.scheduleIndex[s.ID] = s

	logging.Info("Schedule created",
		"schedule_id", s.ID,
		"flight_number", s.FlightNumber,
		"route", s.DepartureAirportCode+"-"+s.ArrivalAirportCode,
		"days", s.DaysOfWeek,
	)
	return s, nil
}

func (l *FlightLedger) SetScheduleEnabled(id string, enabled bool) error {
	s, ok := l.scheduleIndex[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchedule, id)
	}
	s.Enabled = enabled
	return nil
}

func (l *FlightLedger) Schedules() []entities.FlightSchedule {
	out := make([]entities.FlightSchedule, 0, len(l.schedules))
	for _, s := range l.schedules {
		out = append(out, *s)
	}
	return out
}

func (l *FlightLedger) Get(id string) (*entities.Flight, bool) {
	f, ok := l.flightIndex[id]
	return f, ok
}

// List returns every flight in creation order.
func (l *FlightLedger) List() []entities.Flight {
	return l.filter(func(*entities.Flight) bool { return true })
}

func (l *FlightLedger) ByStatus(status entities.FlightStatus) []entities.Flight {
	return l.filter(func(f *entities.Flight) bool { return f.Status == status })
}

// Active lists flights that are scheduled or in the air.
func (l *FlightLedger) Active() []entities.Flight {
	return l.filter(func(f *entities.Flight) bool { return !f.Status.IsTerminal() })
}

// Terminal lists arrived and cancelled flights.
func (l *FlightLedger) Terminal() []entities.Flight {
	return l.filter(func(f *entities.Flight) bool { return f.Status.IsTerminal() })
}

// scheduledFlights exposes live records to the booking engine.
func (l *FlightLedger) scheduledFlights() []*entities.Flight {
	out := []*entities.Flight{}
	for _, f := range l.flights {
		if f.Status == entities.FlightStatusScheduled {
			out = append(out, f)
		}
	}
	return out
}

func (l *FlightLedger) filter(keep func(*entities.Flight) bool) []entities.Flight {
	out := []entities.Flight{}
	for _, f := range l.flights {
		if keep(f) {
			out = append(out, *f)
		}
	}
	return out
}

type routeFunc func(from, to string) (float64, error)

func (l *FlightLedger) resolveRoute(from, to string, route routeFunc) (entities.Airport, entities.Airport, float64, error) {
	if strings.EqualFold(from, to) {
		return entities.Airport{}, entities.Airport{}, 0, fmt.Errorf("%w: %s", ErrInvalidRoute, from)
	}
	distance, err := route(from, to)
	if err != nil {
		return entities.Airport{}, entities.Airport{}, 0, err
	}
	dep, _ := l.directory.GetByCode(from)
	arr, _ := l.directory.GetByCode(to)
	return dep, arr, distance, nil
}

type flightLedgerState struct {
	Flights         []entities.Flight         `msgpack:"flights"`
	Schedules       []entities.FlightSchedule `msgpack:"schedules"`
	LastScheduleDay int                       `msgpack:"last_schedule_day"`
}

func (l *FlightLedger) state() flightLedgerState {
	return flightLedgerState{
		Flights:         l.List(),
		Schedules:       l.Schedules(),
		LastScheduleDay: l.lastScheduleDay,
	}
}

func (l *FlightLedger) restore(s flightLedgerState) {
	l.flights = make([]*entities.Flight, 0, len(s.Flights))
	l.flightIndex = make(map[string]*entities.Flight, len(s.Flights))
	for i := range s.Flights {
		f := s.Flights[i]
		l.flights = append(l.flights, &f)
		l.flightIndex[f.ID] = &f
	}

	l.schedules = make([]*entities.FlightSchedule, 0, len(s.Schedules))
	l.scheduleIndex = make(map[string]*entities.FlightSchedule, len(s.Schedules))
	for i := range s.Schedules {
		sc := s.Schedules[i]
		l.schedules = append(l.schedules, &sc)
		l.scheduleIndex[sc.ID] = &sc
	}
	l.lastScheduleDay = s.LastScheduleDay
}

func durationFor(distance float64, model entities.PlaneModel) (float64, error) {
	minutes, err := geo.DurationMinutes(distance, model.Speed)
	if err != nil {
		return 0, fmt.Errorf("model %s: %w", model.ID, err)
	}
	// arrival must be strictly after departure
	if minutes < 1 {
		minutes = 1
	}
	return minutes, nil
}

func validatePricing(p entities.TicketPricing) error {
	for _, class := range entities.SeatClasses {
		if price := p.Get(class); price < 0 {
			return fmt.Errorf("%w: %s price %.2f", ErrInvalidPricing, class, price)
		}
	}
	return nil
}

func normaliseDays(days []int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, d := range days {
		d = ((d % 7) + 7) % 7
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}
