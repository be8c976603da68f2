package routes

import (
	"infinite-experiment/skyline/internal/api"
	"infinite-experiment/skyline/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// Queries are unlimited; anything that mutates the game goes through limiter.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, limiter *middleware.IPRateLimiter) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/time", handlers.GetTime())
		v1.Get("/airports", handlers.ListAirports())
		v1.Get("/airports/by-demand", handlers.AirportsByDemand())
		v1.Get("/airports/{code}", handlers.GetAirport())
		v1.Get("/routes/quote", handlers.QuoteRoute())
		v1.Get("/planes/models", handlers.ListModels())
		v1.Get("/fleet", handlers.ListFleet())
		v1.Get("/flights", handlers.ListFlights())
		v1.Get("/schedules", handlers.ListSchedules())
		v1.Get("/company", handlers.GetCompany())
		v1.Get("/reports/routes", handlers.RouteReport())

		v1.Group(func(cmd chi.Router) {
			cmd.Use(limiter.Middleware)

			cmd.Post("/clock/start", handlers.StartClock())
			cmd.Post("/clock/pause", handlers.PauseClock())
			cmd.Post("/clock/stop", handlers.StopClock())
			cmd.Post("/clock/speed", handlers.SetSpeed())

			cmd.Post("/fleet/purchase", handlers.PurchasePlane())

			cmd.Post("/flights", handlers.CreateFlight())
			cmd.Post("/flights/{id}/cancel", handlers.CancelFlight())

			cmd.Post("/schedules", handlers.CreateSchedule())
			cmd.Post("/schedules/{id}/enable", handlers.ToggleSchedule(true))
			cmd.Post("/schedules/{id}/disable", handlers.ToggleSchedule(false))

			cmd.Put("/company/name", handlers.RenameCompany())

			cmd.Post("/game/save", handlers.SaveGame())
			cmd.Post("/game/load", handlers.LoadGame())
		})
	})
}
