package entities

type OperatingHours struct {
	Open  int `json:"open" msgpack:"open"`
	Close int `json:"close" msgpack:"close"`
}

// AirportDemand is the per-class daily passenger potential of an airport.
type AirportDemand struct {
	Business   int `json:"business" msgpack:"business"`
	Leisure    int `json:"leisure" msgpack:"leisure"`
	FirstClass int `json:"firstClass" msgpack:"first_class"`
}

// Total returns the sum of the three class demands.
func (d AirportDemand) Total() int {
	return d.Business + d.Leisure + d.FirstClass
}

// ForSeatClass maps a seat class onto the passenger segment that fills it.
// Leisure travellers book economy, business travellers book business and
// first class is filled from the first class segment.
func (d AirportDemand) ForSeatClass(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return d.Leisure
	case SeatClassBusiness:
		return d.Business
	case SeatClassFirstClass:
		return d.FirstClass
	}
	return 0
}

// Airport is immutable reference data loaded once at startup.
type Airport struct {
	Code           string         `json:"code" msgpack:"code"`
	Name           string         `json:"name" msgpack:"name"`
	City           string         `json:"city" msgpack:"city"`
	Country        string         `json:"country" msgpack:"country"`
	Lat            float64        `json:"lat" msgpack:"lat"`
	Lng            float64        `json:"lng" msgpack:"lng"`
	OperatingHours OperatingHours `json:"operatingHours" msgpack:"operating_hours"`
	Demand         AirportDemand  `json:"demand" msgpack:"demand"`
	RunwayLength   int            `json:"runwayLength" msgpack:"runway_length"`
	LandingFee     float64        `json:"landingFee" msgpack:"landing_fee"`
}
