package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/internal/store"
)

type reminderJob struct {
	device DeviceService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReminderJob creates a reminderJob that periodically checks the elapsed
// time since the last successful sync. The job is idle until Start is called.
func NewReminderJob(device DeviceService, logger *logger.Logger) ReminderJob {
	return &reminderJob{
		device: device,
		logger: logger,
	}
}

// Start implements ReminderJob. It stops any previously running job, then
// launches a background goroutine that checks the last-sync age every
// interval and calls notify when it exceeds threshold. If interval or
// threshold is zero or negative they default to 1 hour and 24 hours.
func (j *reminderJob) Start(ctx context.Context, interval, threshold time.Duration, notify func(elapsed time.Duration)) {
	if interval <= 0 {
		interval = time.Hour
	}
	if threshold <= 0 {
		threshold = 24 * time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx, threshold, notify)
			}
		}
	}()
}

// Stop implements ReminderJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *reminderJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *reminderJob) check(ctx context.Context, threshold time.Duration, notify func(elapsed time.Duration)) {
	last, err := j.device.LastSyncTime(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// never synced: treat the threshold itself as the elapsed age so
			// the very first reminder still fires
			notify(threshold)
		}
		return
	}

	if elapsed := time.Since(last); elapsed > threshold {
		j.logger.Debug().
			Str("func", "reminderJob.check").
			Dur("elapsed", elapsed).
			Msg("sync overdue")
		notify(elapsed)
	}
}
