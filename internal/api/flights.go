package api

import (
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	ctxpkg "infinite-experiment/skyline/internal/context"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/dtos"
	"infinite-experiment/skyline/internal/models/entities"
	"infinite-experiment/skyline/internal/services"

	"github.com/go-chi/chi/v5"
)

// defaultDepartureLead is how far ahead a flight departs when the request
// leaves the departure time out.
const defaultDepartureLead = 60.0

var flightStatusFilters = map[string]bool{
	"":                                     true,
	"active":                               true,
	string(entities.FlightStatusScheduled): true,
	string(entities.FlightStatusInFlight):  true,
	string(entities.FlightStatusArrived):   true,
	string(entities.FlightStatusCancelled): true,
}

func toFlightResponse(f entities.Flight) dtos.FlightResponse {
	return dtos.FlightResponse{
		Flight:             f,
		DurationFormatted:  common.FormatDuration(f.DurationMinutes()),
		DepartureFormatted: common.FormatGameTime(f.DepartureTime),
	}
}

// ListFlights handles GET /api/v1/flights?status=
func (h *Handlers) ListFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status := r.URL.Query().Get("status")
		if !flightStatusFilters[status] {
			common.RespondError(w, initTime, nil, constants.MsgInvalidStatus, http.StatusBadRequest)
			return
		}

		flights := h.sim().Flights(status)
		resp := make([]dtos.FlightResponse, 0, len(flights))
		for _, f := range flights {
			resp = append(resp, toFlightResponse(f))
		}
		common.RespondSuccess(w, initTime, "Flights fetched", resp)
	}
}

// CreateFlight handles POST /api/v1/flights
func (h *Handlers) CreateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sim := h.sim()

		var req dtos.CreateFlightRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		departure := sim.TotalMinutes() + defaultDepartureLead
		if req.DepartureTime != nil {
			departure = *req.DepartureTime
		}

		var prices entities.TicketPricing
		if req.TicketPricing != nil {
			prices = *req.TicketPricing
		} else {
			fair, err := sim.FairPricing(req.DepartureAirportCode, req.ArrivalAirportCode)
			if err != nil {
				respondServiceError(w, r, initTime, err)
				return
			}
			prices = fair
		}

		flight, err := sim.CreateFlight(services.CreateFlightParams{
			FlightNumber:         req.FlightNumber,
			DepartureAirportCode: req.DepartureAirportCode,
			ArrivalAirportCode:   req.ArrivalAirportCode,
			PlaneID:              req.PlaneID,
			DepartureTime:        departure,
			TicketPricing:        prices,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		logging.WithRequest(ctxpkg.GetRequestID(r.Context()), r.URL.Path).Infow("Flight created via API",
			"flight_id", flight.ID,
			"flight_number", flight.FlightNumber,
		)
		common.RespondSuccess(w, initTime, "Flight created", toFlightResponse(flight), http.StatusCreated)
	}
}

// CancelFlight handles POST /api/v1/flights/{id}/cancel. A flight that has
// already departed answers 409.
func (h *Handlers) CancelFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		cancelled, err := h.sim().CancelFlight(id)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		resp := dtos.CancelFlightResponse{ID: id, Cancelled: cancelled}
		if !cancelled {
			common.RespondError(w, initTime, nil, constants.MsgFlightNotCancelled, http.StatusConflict)
			return
		}
		common.RespondSuccess(w, initTime, "Flight cancelled", resp)
	}
}
