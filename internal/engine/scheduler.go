package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/searchit/internal/metrics"
)

const (
	jobWishListRefresh = "wishlist_refresh"
	jobLocationRefresh = "location_refresh"

	jobTimeout = time.Minute
)

// Scheduler runs quiet wish list refreshes and location refreshes on
// fixed intervals. A zero or negative interval disables that job.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	wishListEntryID cron.EntryID
	locationEntryID cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
func NewScheduler(
	eng *Engine,
	wishListInterval time.Duration,
	locationInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if wishListInterval > 0 {
		id, err := c.AddFunc("@every "+wishListInterval.String(), s.runWishListRefresh)
		if err != nil {
			return nil, err
		}
		s.wishListEntryID = id
	}

	if locationInterval > 0 {
		id, err := c.AddFunc("@every "+locationInterval.String(), s.runLocationRefresh)
		if err != nil {
			return nil, err
		}
		s.locationEntryID = id
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runWishListRefresh() {
	s.runJob(jobWishListRefresh, func(ctx context.Context) error {
		_, err := s.engine.WishList().Refresh(ctx)
		return err
	})
}

func (s *Scheduler) runLocationRefresh() {
	s.runJob(jobLocationRefresh, func(ctx context.Context) error {
		_, err := s.engine.RefreshLocation(ctx)
		return err
	})
}

func (s *Scheduler) runJob(name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	if err := fn(ctx); err != nil {
		metrics.SchedulerRunsTotal.WithLabelValues(name, "failed").Inc()
		s.log.Error("scheduled job failed", "job", name, "error", err)
		return
	}

	metrics.SchedulerRunsTotal.WithLabelValues(name, "succeeded").Inc()
	s.log.Debug("scheduled job complete", "job", name, "duration", time.Since(start))
}
