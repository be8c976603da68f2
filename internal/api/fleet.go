package api

import (
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	ctxpkg "infinite-experiment/skyline/internal/context"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/dtos"
)

func (h *Handlers) ListModels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Aircraft models fetched", h.sim().Models())
	}
}

// ListFleet handles GET /api/v1/fleet. With ?airport= only planes available
// at that airport are listed.
func (h *Handlers) ListFleet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if code := r.URL.Query().Get("airport"); code != "" {
			common.RespondSuccess(w, initTime, "Available aircraft fetched", h.sim().AvailablePlanes(code))
			return
		}
		common.RespondSuccess(w, initTime, "Fleet fetched", h.sim().Fleet())
	}
}

// PurchasePlane handles POST /api/v1/fleet/purchase
func (h *Handlers) PurchasePlane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.PurchasePlaneRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		plane, err := h.sim().PurchasePlane(req.ModelID, req.Registration, req.AirportCode)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		logging.WithRequest(ctxpkg.GetRequestID(r.Context()), r.URL.Path).Infow("Aircraft purchased",
			"plane_id", plane.ID,
			"registration", plane.Registration,
			"model", plane.ModelID,
		)
		common.RespondSuccess(w, initTime, "Aircraft purchased", plane, http.StatusCreated)
	}
}
