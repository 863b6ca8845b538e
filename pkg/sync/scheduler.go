package sync

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Scheduler runs periodic background syncs of all enabled feeds
type Scheduler struct {
	engine   *Engine
	interval time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewScheduler creates a scheduler driving the engine every interval
func NewScheduler(engine *Engine, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{engine: engine, interval: interval}
}

// Start begins the periodic sync loop, the first run fires immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v", s.interval)
}

// Stop cancels the loop and waits for an in-flight run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.syncOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncOnce(ctx)
		}
	}
}

func (s *Scheduler) syncOnce(ctx context.Context) {
	results, err := s.engine.SyncAllUsers(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduled sync failed: %v", err)
		return
	}

	total := 0
	for _, r := range results {
		total += r.Inserted
	}
	lgr.Printf("[INFO] scheduled sync completed, %d feeds, %d new articles", len(results), total)
}
