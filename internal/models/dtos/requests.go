package dtos

import "infinite-experiment/skyline/internal/models/entities"

type SetSpeedRequest struct {
	Speed int `json:"speed"`
}

type PurchasePlaneRequest struct {
	ModelID      string `json:"modelId"`
	Registration string `json:"registration"`
	AirportCode  string `json:"airportCode"`
}

// CreateFlightRequest leaves DepartureTime and TicketPricing optional: a
// missing departure is one hour from now and missing prices default to fair.
type CreateFlightRequest struct {
	FlightNumber         string                  `json:"flightNumber"`
	DepartureAirportCode string                  `json:"departureAirportCode"`
	ArrivalAirportCode   string                  `json:"arrivalAirportCode"`
	PlaneID              string                  `json:"planeId"`
	DepartureTime        *float64                `json:"departureTime"`
	TicketPricing        *entities.TicketPricing `json:"ticketPricing"`
}

type CreateScheduleRequest struct {
	FlightNumber         string                  `json:"flightNumber"`
	DepartureAirportCode string                  `json:"departureAirportCode"`
	ArrivalAirportCode   string                  `json:"arrivalAirportCode"`
	PlaneID              string                  `json:"planeId"`
	DepartureTimeOfDay   float64                 `json:"departureTimeOfDay"`
	DaysOfWeek           []int                   `json:"daysOfWeek"`
	TicketPricing        *entities.TicketPricing `json:"ticketPricing"`
}

type RenameCompanyRequest struct {
	Name string `json:"name"`
}
