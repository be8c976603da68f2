package dtos

import "infinite-experiment/skyline/internal/models/entities"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type ClockResponse struct {
	entities.GameTime
	Formatted string `json:"formatted"`
	Speed     int    `json:"speed"`
	SpeedName string `json:"speedName"`
	IsPaused  bool   `json:"isPaused"`
	Running   bool   `json:"running"`
}

type CompanyResponse struct {
	entities.CompanyOverview
	CashFormatted        string `json:"cashFormatted"`
	ProfitTodayFormatted string `json:"profitTodayFormatted"`
}

type FlightResponse struct {
	entities.Flight
	DurationFormatted  string `json:"durationFormatted"`
	DepartureFormatted string `json:"departureFormatted"`
}

type CancelFlightResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

type SaveGameResponse struct {
	Path         string  `json:"path"`
	Bytes        int64   `json:"bytes"`
	TotalMinutes float64 `json:"totalMinutes"`
}
