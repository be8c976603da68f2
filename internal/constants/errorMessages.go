package constants

const (
	MsgInvalidBody        = "Invalid request body"
	MsgUnknownAirport     = "Airport not found"
	MsgUnknownModel       = "Aircraft model not found"
	MsgUnknownPlane       = "Aircraft not found in fleet"
	MsgUnknownFlight      = "Flight not found"
	MsgUnknownSchedule    = "Schedule not found"
	MsgInsufficientFunds  = "Insufficient funds to purchase aircraft"
	MsgFlightNotCancelled = "Flight is no longer scheduled and cannot be cancelled"
	MsgInvalidRoute       = "Route cannot be flown"
	MsgInvalidSchedule    = "Invalid schedule"
	MsgInvalidPricing     = "Ticket prices must not be negative"
	MsgReportsDisabled    = "Reporting database is not configured"
	MsgInvalidSpeed       = "Speed must be one of 0 (paused), 1 (slow), 2 (normal), 3 (fast)"
	MsgInvalidStatus      = "Unknown flight status filter"
	MsgSaveFailed         = "Failed to save game"
	MsgLoadFailed         = "Failed to load game"
	MsgReportFailed       = "Failed to build report"
)
