// Package retention trims old visit records on a fixed interval so the
// visit log stays inside the configured retention window.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// VisitDeleter abstracts the storage operation the pruner needs.
type VisitDeleter interface {
	DeleteVisitsBefore(cutoff time.Time) (int64, error)
}

// Pruner periodically deletes visits older than the retention window.
type Pruner struct {
	store    VisitDeleter
	keep     time.Duration
	interval time.Duration
	logger   *slog.Logger
}

// NewPruner creates a Pruner keeping retentionDays of visits.
// If interval is <= 0, it defaults to one hour.
func NewPruner(store VisitDeleter, retentionDays int, interval time.Duration) *Pruner {
	if interval <= 0 {
		interval = time.Hour
	}
	if retentionDays <= 0 {
		retentionDays = 180
	}
	return &Pruner{
		store:    store,
		keep:     time.Duration(retentionDays) * 24 * time.Hour,
		interval: interval,
		logger:   slog.Default(),
	}
}

// Run prunes immediately and then on every tick until ctx is cancelled.
func (p *Pruner) Run(ctx context.Context) {
	for {
		if err := p.RunOnce(); err != nil {
			p.logger.Error("visit pruning failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

// RunOnce deletes visits older than the retention window.
func (p *Pruner) RunOnce() error {
	cutoff := time.Now().UTC().Add(-p.keep)
	n, err := p.store.DeleteVisitsBefore(cutoff)
	if err != nil {
		return fmt.Errorf("deleting visits before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if n > 0 {
		p.logger.Info("pruned old visits", "deleted", n, "cutoff", cutoff.Format(time.RFC3339))
	}
	return nil
}
