package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs background jobs on fixed intervals. Each job runs once
// immediately after Start, then on every tick until Stop cancels the
// shared context and waits for the loops to drain.
type Scheduler struct {
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Register everything before Start; AddJob is
// not safe to call afterwards.
func (s *Scheduler) AddJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{name: name, every: every, run: run})
}

func (s *Scheduler) Start() {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("background jobs started", "jobs", len(s.jobs))
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("background jobs stopped")
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
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("background job failed", "job", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("background job finished", "job", j.name, "duration", time.Since(start))
}
