package api

import (
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	"infinite-experiment/skyline/internal/models/dtos"
	"infinite-experiment/skyline/internal/models/entities"
	"infinite-experiment/skyline/internal/services"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListSchedules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Schedules fetched", h.sim().Schedules())
	}
}

// CreateSchedule handles POST /api/v1/schedules
func (h *Handlers) CreateSchedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sim := h.sim()

		var req dtos.CreateScheduleRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
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

		schedule, err := sim.CreateSchedule(services.CreateScheduleParams{
			FlightNumber:         req.FlightNumber,
			DepartureAirportCode: req.DepartureAirportCode,
			ArrivalAirportCode:   req.ArrivalAirportCode,
			PlaneID:              req.PlaneID,
			DepartureTimeOfDay:   req.DepartureTimeOfDay,
			DaysOfWeek:           req.DaysOfWeek,
			TicketPricing:        prices,
		})
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Schedule created", schedule, http.StatusCreated)
	}
}

// ToggleSchedule handles POST /api/v1/schedules/{id}/enable and /disable.
func (h *Handlers) ToggleSchedule(enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.sim().SetScheduleEnabled(chi.URLParam(r, "id"), enabled); err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		msg := "Schedule disabled"
		if enabled {
			msg = "Schedule enabled"
		}
		common.RespondSuccess(w, initTime, msg, nil)
	}
}
