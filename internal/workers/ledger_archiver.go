package workers

import (
	"context"
	"time"

	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/services"
)

type LedgerSource interface {
	LedgerSnapshot() services.LedgerSnapshot
}

type LedgerStore interface {
	Archive(ctx context.Context, snap services.LedgerSnapshot) (int, error)
}

// LedgerArchiver periodically copies completed days and finished flights
// into the database. It only ever reads a locked snapshot, never a live tick.
type LedgerArchiver struct {
	source  LedgerSource
	store   LedgerStore
	metrics *metrics.MetricsRegistry
}

func NewLedgerArchiver(source LedgerSource, store LedgerStore, m *metrics.MetricsRegistry) *LedgerArchiver {
	return &LedgerArchiver{
		source:  source,
		store:   store,
		metrics: m,
	}
}

// Start archives on every interval until ctx is cancelled, then flushes once
// more.
func (a *LedgerArchiver) Start(ctx context.Context, interval time.Duration) error {
	logging.Info("Ledger archiver starting", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := a.RunOnce(flushCtx); err != nil {
				logging.Error("Final ledger archive failed", "error", err)
			}
			logging.Info("Ledger archiver shutting down")
			return nil
		case <-ticker.C:
			if err := a.RunOnce(ctx); err != nil {
				logging.Error("Ledger archive failed", "error", err)
			}
		}
	}
}

func (a *LedgerArchiver) RunOnce(ctx context.Context) error {
	start := time.Now()
	snap := a.source.LedgerSnapshot()

	added, err := a.store.Archive(ctx, snap)

	if a.metrics != nil {
		a.metrics.ArchiveJobDuration.WithLabelValues("ledger").Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return err
	}

	if added > 0 {
		logging.Debug("Ledger archived",
			"flights", added,
			"days", len(snap.FinancialHistory),
			"total_minutes", snap.TotalMinutes,
		)
	}
	return nil
}
