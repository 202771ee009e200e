package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Harsh-GitHup/go-weather-app/internal/cache"
	"github.com/Harsh-GitHup/go-weather-app/pkg/log"
)

// Janitor periodically evicts expired entries from the search-result cache.
type Janitor struct {
	scheduler *gocron.Scheduler
	store     *cache.Store
	interval  time.Duration
}

// New creates a Janitor sweeping store every interval.
func New(store *cache.Store, interval time.Duration) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		interval:  interval,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (j *Janitor) Start() error {
	interval := j.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := j.scheduler.Every(interval).Do(func() {
		if evicted := j.store.Sweep(); evicted > 0 {
			log.Infof("cache janitor: evicted %d expired entries, %d remain", evicted, j.store.Len())
		}
	})
	if err != nil {
		return err
	}

	j.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future sweeps.
func (j *Janitor) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}
