package services

import (
	"math"

	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"
	"infinite-experiment/skyline/internal/pricing"
)

// BookingEngine sells seats on scheduled flights each tick. Demand is an
// aggregate, renewable potential; no individual travellers are tracked.
type BookingEngine struct {
	flights   *FlightLedger
	fleet     *FleetRegistry
	directory *AirportDirectory
	metrics   *metrics.MetricsRegistry
}

func NewBookingEngine(flights *FlightLedger, fleet *FleetRegistry, directory *AirportDirectory, m *metrics.MetricsRegistry) *BookingEngine {
	return &BookingEngine{
		flights:   flights,
		fleet:     fleet,
		directory: directory,
		metrics:   m,
	}
}

// ProcessTick adds bookings to every still-scheduled flight, never exceeding
// the plane's seats in any class. Flights whose plane or airports cannot be
// resolved are skipped.
func (e *BookingEngine) ProcessTick(totalMinutes float64) {
	for _, f := range e.flights.scheduledFlights() {
		plane, ok := e.fleet.GetPlane(f.PlaneID)
		if !ok {
			continue
		}
		dep, ok := e.directory.GetByCode(f.DepartureAirportCode)
		if !ok {
			continue
		}
		arr, ok := e.directory.GetByCode(f.ArrivalAirportCode)
		if !ok {
			continue
		}

		days := math.Max(0, (f.DepartureTime-totalMinutes)/entities.MinutesPerDay)

		for _, class := range entities.SeatClasses {
			booked := f.Passengers.Get(class)
			capacity := plane.Seats.Get(class)
			if booked >= capacity {
				continue
			}

			demand := float64(dep.Demand.ForSeatClass(class)+arr.Demand.ForSeatClass(class)) / 2
			fair := pricing.FairPrice(f.DistanceNm, class)
			rate := pricing.BookingRate(f.TicketPricing.Get(class), fair, days, demand)
			if rate <= 0 {
				continue
			}

			sold := min(rate, capacity-booked)
			f.Passengers.Set(class, booked+sold)
			if e.metrics != nil {
				e.metrics.SeatsBookedTotal.WithLabelValues(string(class)).Add(float64(sold))
			}
		}
	}
}
