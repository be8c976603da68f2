package entities

type SeatClass string

const (
	SeatClassEconomy    SeatClass = "economy"
	SeatClassBusiness   SeatClass = "business"
	SeatClassFirstClass SeatClass = "firstClass"
)

// SeatClasses lists every class in the order revenue and bookings are evaluated.
var SeatClasses = []SeatClass{SeatClassEconomy, SeatClassBusiness, SeatClassFirstClass}

// SeatLayout holds one integer per seat class. It is used both for cabin
// configuration and for booked passenger counts.
type SeatLayout struct {
	Economy    int `json:"economy" msgpack:"economy"`
	Business   int `json:"business" msgpack:"business"`
	FirstClass int `json:"firstClass" msgpack:"first_class"`
}

func (s SeatLayout) Get(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return s.Economy
	case SeatClassBusiness:
		return s.Business
	case SeatClassFirstClass:
		return s.FirstClass
	}
	return 0
}

func (s *SeatLayout) Set(class SeatClass, v int) {
	switch class {
	case SeatClassEconomy:
		s.Economy = v
	case SeatClassBusiness:
		s.Business = v
	case SeatClassFirstClass:
		s.FirstClass = v
	}
}

func (s SeatLayout) Total() int {
	return s.Economy + s.Business + s.FirstClass
}

// PlaneModel is an entry of the purchasable aircraft catalog.
type PlaneModel struct {
	ID                 string     `json:"id" msgpack:"id"`
	Manufacturer       string     `json:"manufacturer" msgpack:"manufacturer"`
	Name               string     `json:"name" msgpack:"name"`
	Range              float64    `json:"range" msgpack:"range"`
	Speed              float64    `json:"speed" msgpack:"speed"`
	DefaultSeats       SeatLayout `json:"defaultSeats" msgpack:"default_seats"`
	MinRunwayLength    int        `json:"minRunwayLength" msgpack:"min_runway_length"`
	PurchasePrice      float64    `json:"purchasePrice" msgpack:"purchase_price"`
	OperatingCostPerNm float64    `json:"operatingCostPerNm" msgpack:"operating_cost_per_nm"`
	FuelPerHour        float64    `json:"fuelPerHour" msgpack:"fuel_per_hour"`
}

type PlaneStatus string

const (
	PlaneStatusAvailable   PlaneStatus = "available"
	PlaneStatusInFlight    PlaneStatus = "in-flight"
	PlaneStatusMaintenance PlaneStatus = "maintenance"
)

// OwnedPlane is an aircraft in the company's fleet. Seats start as a copy of
// the model's default layout and may diverge afterwards.
type OwnedPlane struct {
	ID                 string      `json:"id" msgpack:"id"`
	ModelID            string      `json:"modelId" msgpack:"model_id"`
	Registration       string      `json:"registration" msgpack:"registration"`
	Seats              SeatLayout  `json:"seats" msgpack:"seats"`
	Status             PlaneStatus `json:"status" msgpack:"status"`
	TotalFlightHours   float64     `json:"totalFlightHours" msgpack:"total_flight_hours"`
	CurrentFlightID    string      `json:"currentFlightId,omitempty" msgpack:"current_flight_id"`
	CurrentAirportCode string      `json:"currentAirportCode" msgpack:"current_airport_code"`
}
