package api

import (
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/dtos"
	"infinite-experiment/skyline/internal/models/entities"
)

func (h *Handlers) clockResponse() dtos.ClockResponse {
	clock := h.deps.Services.Clock
	gt := h.sim().Time()
	speed := clock.Speed()

	return dtos.ClockResponse{
		GameTime:  gt,
		Formatted: common.FormatGameTime(gt.TotalMinutes),
		Speed:     int(speed),
		SpeedName: speed.String(),
		IsPaused:  speed == entities.SpeedPaused,
		Running:   clock.IsRunning(),
	}
}

// GetTime handles GET /api/v1/time
func (h *Handlers) GetTime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Game time fetched", h.clockResponse())
	}
}

// StartClock handles POST /api/v1/clock/start. Starting an already running
// clock is not an error.
func (h *Handlers) StartClock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if started := h.deps.Services.Clock.Start(h.deps.ClockCtx); !started {
			common.RespondSuccess(w, initTime, "Clock already running", h.clockResponse())
			return
		}
		common.RespondSuccess(w, initTime, "Clock started", h.clockResponse())
	}
}

func (h *Handlers) PauseClock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		h.deps.Services.Clock.Pause()
		common.RespondSuccess(w, initTime, "Clock paused", h.clockResponse())
	}
}

func (h *Handlers) StopClock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		h.deps.Services.Clock.Stop()
		common.RespondSuccess(w, initTime, "Clock stopped", h.clockResponse())
	}
}

// SetSpeed handles POST /api/v1/clock/speed
func (h *Handlers) SetSpeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SetSpeedRequest
		if err := decodeBody(r, &req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Clock.SetSpeed(entities.GameSpeed(req.Speed)); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidSpeed, http.StatusBadRequest)
			return
		}

		logging.Info("Game speed changed", "speed", entities.GameSpeed(req.Speed).String())
		common.RespondSuccess(w, initTime, "Speed updated", h.clockResponse())
	}
}
