package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is one unit of background work. It must honor ctx cancellation.
type JobFunc func(ctx context.Context) error

type job struct {
	name  string
	every time.Duration
	run   JobFunc
}

// Scheduler runs registered jobs on fixed intervals. Jobs that gate
// themselves on the wall clock (run-at-midnight checks) register with a
// short interval and return early outside their window.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	started bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Registration after Start has no effect.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: interval, run: fn})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job. Each job runs once
// immediately, then on every tick.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Cron job panicked", "name", j.name, "panic", r)
		}
	}()

	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time, for tests and
// manual backfills.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	for _, j := range jobs {
		if err := j.run(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}
