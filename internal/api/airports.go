package api

import (
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"

	"github.com/go-chi/chi/v5"
)

// ListAirports handles GET /api/v1/airports?q=
// An empty query lists the whole directory.
func (h *Handlers) ListAirports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		airports := h.sim().Airports(r.URL.Query().Get("q"))
		common.RespondSuccess(w, initTime, "Airports fetched", airports)
	}
}

func (h *Handlers) AirportsByDemand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Airports fetched", h.sim().AirportsByDemand())
	}
}

// GetAirport handles GET /api/v1/airports/{code}
func (h *Handlers) GetAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airport, err := h.sim().Airport(chi.URLParam(r, "code"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Airport fetched", airport)
	}
}

// QuoteRoute handles GET /api/v1/routes/quote?from=&to=&model=
func (h *Handlers) QuoteRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		quote, err := h.sim().QuoteRoute(q.Get("from"), q.Get("to"), q.Get("model"))
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Route quoted", quote)
	}
}
