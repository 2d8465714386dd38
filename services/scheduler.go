package services

import (
	"context"
	"log"
	"time"
)

// DefaultReminderInterval is the fixed cadence of the reminder daemon.
const DefaultReminderInterval = 10 * time.Minute

// Scheduler runs a job once immediately and then on a fixed wall-clock
// interval until the context is cancelled. Runs are serialized on a single
// goroutine; when a run overruns the interval the next trigger fires as soon
// as it returns. One bad run never terminates the loop.
type Scheduler struct {
	interval time.Duration
	job      func(time.Time) error
}

func NewScheduler(interval time.Duration, job func(time.Time) error) *Scheduler {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	return &Scheduler{interval: interval, job: job}
}

// Start blocks until ctx is cancelled. Cancellation takes effect after the
// in-flight run completes; runs are read-then-send, so nothing needs rolling
// back.
func (s *Scheduler) Start(ctx context.Context) {
	s.runOnce(time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("scheduler stopped: %v", ctx.Err())
			return
		case t := <-ticker.C:
			s.runOnce(t)
		}
	}
}

func (s *Scheduler) runOnce(t time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scheduled run panicked: %v", r)
		}
	}()
	if err := s.job(t); err != nil {
		log.Printf("scheduled run failed: %v", err)
	}
}
