package corpus

import (
	"context"
	"log/slog"
	"time"

	"github.com/threedocs/threedocs"
)

// DefaultRefreshInterval is how often the corpus is rebuilt from the
// network when no interval is configured.
const DefaultRefreshInterval = time.Hour

// Refresher rebuilds the corpus on a fixed interval and publishes each
// successful load to the store. There is no cancellation path for an
// in-flight load: a new tick starts a fresh cycle regardless of whether
// the previous one is still finishing, and the last publish wins.
type Refresher struct {
	Loader   threedocs.CorpusLoader
	Store    *Store
	Interval time.Duration
	Logger   *slog.Logger
}

// Run performs an immediate load and then refreshes on the interval
// until ctx is canceled. The initial load's error is returned so the
// caller can refuse to start without a corpus; subsequent failures are
// logged and keep the previous corpus published.
func (r *Refresher) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	if err := r.refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			go func() {
				if err := r.refresh(ctx); err != nil {
					r.logger().Warn("corpus refresh failed", "error", err)
				}
			}()
		}
	}
}

// refresh runs one load cycle and publishes the result.
func (r *Refresher) refresh(ctx context.Context) error {
	corpus, err := r.Loader.Load(ctx)
	if err != nil {
		return err
	}

	r.Store.Publish(corpus)
	r.logger().Info("corpus published",
		"revision", corpus.Revision,
		"docs", len(corpus.Docs),
		"examples", len(corpus.Examples),
	)
	return nil
}

func (r *Refresher) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
