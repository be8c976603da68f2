package entities

// TicketPricing is the operator-set price per seat class.
type TicketPricing struct {
	Economy    float64 `json:"economy" msgpack:"economy"`
	Business   float64 `json:"business" msgpack:"business"`
	FirstClass float64 `json:"firstClass" msgpack:"first_class"`
}

func (p TicketPricing) Get(class SeatClass) float64 {
	switch class {
	case SeatClassEconomy:
		return p.Economy
	case SeatClassBusiness:
		return p.Business
	case SeatClassFirstClass:
		return p.FirstClass
	}
	return 0
}

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusInFlight  FlightStatus = "in-flight"
	FlightStatusArrived   FlightStatus = "arrived"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s FlightStatus) IsTerminal() bool {
	return s == FlightStatusArrived || s == FlightStatusCancelled
}

// Flight is a single concrete departure. DepartureTime and ArrivalTime are
// absolute simulated minutes.
type Flight struct {
	ID                   string        `json:"id" msgpack:"id"`
	FlightNumber         string        `json:"flightNumber" msgpack:"flight_number"`
	DepartureAirportCode string        `json:"departureAirportCode" msgpack:"departure_airport_code"`
	ArrivalAirportCode   string        `json:"arrivalAirportCode" msgpack:"arrival_airport_code"`
	PlaneID              string        `json:"planeId" msgpack:"plane_id"`
	DepartureTime        float64       `json:"departureTime" msgpack:"departure_time"`
	ArrivalTime          float64       `json:"arrivalTime" msgpack:"arrival_time"`
	TicketPricing        TicketPricing `json:"ticketPricing" msgpack:"ticket_pricing"`
	Passengers           SeatLayout    `json:"passengers" msgpack:"passengers"`
	Status               FlightStatus  `json:"status" msgpack:"status"`
	Revenue              float64       `json:"revenue" msgpack:"revenue"`
	Cost                 float64       `json:"cost" msgpack:"cost"`
	DistanceNm           float64       `json:"distanceNm" msgpack:"distance_nm"`
	ScheduleID           string        `json:"scheduleId,omitempty" msgpack:"schedule_id"`
}

// DurationMinutes is the block time between departure and arrival.
func (f Flight) DurationMinutes() float64 {
	return f.ArrivalTime - f.DepartureTime
}

// FlightSchedule is a weekly template. DaysOfWeek holds day indexes modulo 7.
type FlightSchedule struct {
	ID                   string        `json:"id" msgpack:"id"`
	FlightNumber         string        `json:"flightNumber" msgpack:"flight_number"`
	DepartureAirportCode string        `json:"departureAirportCode" msgpack:"departure_airport_code"`
	ArrivalAirportCode   string        `json:"arrivalAirportCode" msgpack:"arrival_airport_code"`
	PlaneID              string        `json:"planeId" msgpack:"plane_id"`
	DepartureTimeOfDay   float64       `json:"departureTimeOfDay" msgpack:"departure_time_of_day"`
	DaysOfWeek           []int         `json:"daysOfWeek" msgpack:"days_of_week"`
	TicketPricing        TicketPricing `json:"ticketPricing" msgpack:"ticket_pricing"`
	Enabled              bool          `json:"enabled" msgpack:"enabled"`
}

// RunsOn reports whether the schedule is active on the given day of week.
func (s FlightSchedule) RunsOn(dayOfWeek int) bool {
	for _, d := range s.DaysOfWeek {
		if d == dayOfWeek {
			return true
		}
	}
	return false
}
