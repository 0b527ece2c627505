// Package scheduler runs periodic maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"subcommerce/internal/shared/logger"
)

const (
	defaultExpiryInterval = time.Hour
	batchRunTimeout       = 10 * time.Minute
)

// BatchJob processes one batch and returns the number of rows it touched.
type BatchJob interface {
	Execute(ctx context.Context) (int64, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int64, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int64, error) {
	return f(ctx)
}

type SchedulerManager struct {
	cron   gocron.Scheduler
	logger logger.Interface

	mu      sync.RWMutex
	running bool
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}
	return &SchedulerManager{cron: cron, logger: log}, nil
}

// RegisterSubscriptionJobs schedules the expiry sweep. It runs once on start
// and then every interval; a run still in progress delays the next one.
func (m *SchedulerManager) RegisterSubscriptionJobs(expire BatchJob, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultExpiryInterval
	}
	if err := m.registerBatch("subscription-expire", expire, interval, "subscription", "expire"); err != nil {
		return err
	}
	m.logger.Infow("registered subscription jobs", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) registerBatch(name string, job BatchJob, interval time.Duration, tags ...string) error {
	_, err := m.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), batchRunTimeout)
			defer cancel()
			m.runBatch(ctx, name, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags(tags...),
		gocron.WithName(name),
	)
	return err
}

func (m *SchedulerManager) runBatch(ctx context.Context, name string, job BatchJob) {
	log := m.logger.With("job", name)
	began := time.Now()

	count, err := job.Execute(ctx)
	switch {
	case err != nil && ctx.Err() != nil:
		log.Warnw("batch job cancelled", "error", err)
	case err != nil:
		log.Errorw("batch job failed", "error", err, "duration", time.Since(began))
	case count > 0:
		log.Infow("batch job processed rows", "count", count, "duration", time.Since(began))
	default:
		log.Debugw("batch job found nothing to do", "duration", time.Since(began))
	}
}

func (m *SchedulerManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.cron.Start()
	m.running = true
	m.logger.Infow("scheduler started", "job_count", len(m.cron.Jobs()))
}

// Stop waits for running jobs to complete. Calling it twice is a no-op.
func (m *SchedulerManager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return nil
	}
	m.running = false
	if err := m.cron.Shutdown(); err != nil {
		return err
	}
	m.logger.Infow("scheduler stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.cron.Jobs()
}
