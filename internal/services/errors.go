package services

import "errors"

var (
	ErrUnknownModel      = errors.New("unknown plane model")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownPlane      = errors.New("unknown plane")
	ErrUnknownAirport    = errors.New("unknown airport")
	ErrUnknownSchedule   = errors.New("unknown schedule")
	ErrUnknownFlight     = errors.New("unknown flight")
)

// ErrInvalidRoute is returned for a route that departs and arrives at the
// same airport.
var ErrInvalidRoute = errors.New("route must connect two different airports")

var ErrInvalidSchedule = errors.New("invalid schedule")

// ErrInvalidPricing is returned when any seat class has a negative fare.
var ErrInvalidPricing = errors.New("ticket prices must not be negative")
