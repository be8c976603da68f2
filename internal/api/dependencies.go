package api

import (
	"context"

	"infinite-experiment/skyline/internal/db/repositories"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/services"
	"infinite-experiment/skyline/internal/workers"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	// nil when no reporting database is configured
	Reports *repositories.RouteReportRepository
}

type Services struct {
	Sim   *services.Simulation
	Clock *workers.GameClock
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry

	// ClockCtx outlives any single request; the clock loop is bound to it.
	ClockCtx context.Context
	SavePath string
}

func InitDependencies(
	ctx context.Context,
	sim *services.Simulation,
	clock *workers.GameClock,
	reportDB *sqlx.DB,
	metricsReg *metrics.MetricsRegistry,
	savePath string,
) *Dependencies {
	repos := &Repositories{}
	if reportDB != nil {
		repos.Reports = repositories.NewRouteReportRepository(reportDB)
	}

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Sim:   sim,
			Clock: clock,
		},
		Metrics:  metricsReg,
		ClockCtx: ctx,
		SavePath: savePath,
	}
}
