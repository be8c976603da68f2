package api

import (
	"encoding/json"
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/models/entities"
	"infinite-experiment/skyline/internal/workers"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler handles GET /healthCheck
//
// The database is optional; without one only the clock is reported.
func HealthCheckHandler(db *sqlx.DB, clock *workers.GameClock, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		if db != nil {
			dbStatus := "ok"
			dbDetails := db.DriverName() + " connected"
			if err := db.PingContext(r.Context()); err != nil {
				dbStatus = "down"
				dbDetails = err.Error()
			}
			services["database"] = entities.ServiceStatus{
				Status:  dbStatus,
				Details: dbDetails,
			}
		}

		clockDetails := "stopped"
		if clock.IsRunning() {
			clockDetails = "running at " + clock.Speed().String()
		}
		services["clock"] = entities.ServiceStatus{
			Status:  "ok",
			Details: clockDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		statusCode := http.StatusOK
		if overallStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
