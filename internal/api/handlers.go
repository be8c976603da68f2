package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	ctxpkg "infinite-experiment/skyline/internal/context"
	"infinite-experiment/skyline/internal/geo"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

func (h *Handlers) sim() *services.Simulation {
	return h.deps.Services.Sim
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondServiceError maps simulation errors onto status codes and messages.
func respondServiceError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	status, msg := http.StatusInternalServerError, "Unexpected error"

	switch {
	case errors.Is(err, services.ErrUnknownAirport):
		status, msg = http.StatusNotFound, constants.MsgUnknownAirport
	case errors.Is(err, services.ErrUnknownModel):
		status, msg = http.StatusNotFound, constants.MsgUnknownModel
	case errors.Is(err, services.ErrUnknownPlane):
		status, msg = http.StatusNotFound, constants.MsgUnknownPlane
	case errors.Is(err, services.ErrUnknownFlight):
		status, msg = http.StatusNotFound, constants.MsgUnknownFlight
	case errors.Is(err, services.ErrUnknownSchedule):
		status, msg = http.StatusNotFound, constants.MsgUnknownSchedule
	case errors.Is(err, services.ErrInsufficientFunds):
		status, msg = http.StatusPaymentRequired, constants.MsgInsufficientFunds
	case errors.Is(err, services.ErrInvalidRoute), errors.Is(err, geo.ErrInvalidSpeed):
		status, msg = http.StatusUnprocessableEntity, constants.MsgInvalidRoute
	case errors.Is(err, services.ErrInvalidSchedule):
		status, msg = http.StatusUnprocessableEntity, constants.MsgInvalidSchedule
	case errors.Is(err, services.ErrInvalidPricing):
		status, msg = http.StatusUnprocessableEntity, constants.MsgInvalidPricing
	}

	if status == http.StatusInternalServerError {
		logging.WithRequest(ctxpkg.GetRequestID(r.Context()), r.URL.Path).Errorw("Request failed", "error", err)
	}
	common.RespondError(w, initTime, err, msg, status)
}
