package workers

import (
	"context"
	"time"

	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/services"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type WorkersContainer struct {
	Clock           *GameClock
	Archiver        *LedgerArchiver
	ArchiveInterval time.Duration
}

func InitWorkers(
	sim *services.Simulation,
	db *gorm.DB,
	m *metrics.MetricsRegistry,
	tickInterval time.Duration,
	archiveInterval time.Duration,
) *WorkersContainer {
	w := &WorkersContainer{
		Clock:           NewGameClock(sim, tickInterval),
		ArchiveInterval: archiveInterval,
	}
	if db != nil && archiveInterval > 0 {
		w.Archiver = NewLedgerArchiver(sim, services.NewLedgerArchiveService(db), m)
	}
	return w
}

// Run starts every background worker on g. They stop when ctx is cancelled.
func (w *WorkersContainer) Run(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		return w.Clock.Run(ctx)
	})
	if w.Archiver != nil {
		g.Go(func() error {
			return w.Archiver.Start(ctx, w.ArchiveInterval)
		})
	}
}
