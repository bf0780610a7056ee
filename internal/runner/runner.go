// Package runner drives the engine's periodic work (pipeline passes, publish
// ticks, cache refreshes) off a shared cron instance.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type job struct {
	name    string
	every   time.Duration
	timeout time.Duration
	fn      func(ctx context.Context) error
}

// Runner executes named jobs on fixed intervals. Jobs are registered before
// Start; each run gets its own timeout context and panics are contained.
type Runner struct {
	c       *cron.Cron
	jobs    []job
	baseCtx context.Context
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Runner {
	return &Runner{logger: logger.With("component", "runner")}
}

// Add registers a job. Intervals below one second are rounded up by cron.
func (r *Runner) Add(name string, every, timeout time.Duration, fn func(ctx context.Context) error) {
	r.jobs = append(r.jobs, job{name: name, every: every, timeout: timeout, fn: fn})
}

// Start schedules all registered jobs and begins ticking. The context is the
// parent for every job run.
func (r *Runner) Start(ctx context.Context) error {
	r.baseCtx = ctx

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	r.c = cron.New(cron.WithParser(parser), cron.WithLocation(time.UTC))

	for _, j := range r.jobs {
		spec := fmt.Sprintf("@every %s", j.every.String())
		if _, err := r.c.AddFunc(spec, func() { r.run(j) }); err != nil {
			return fmt.Errorf("register job %s: %w", j.name, err)
		}
	}

	r.c.Start()
	r.logger.Info("runner started", "jobs", len(r.jobs))
	return nil
}

// Stop waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	if r.c == nil {
		return
	}
	<-r.c.Stop().Done()
	r.logger.Info("runner stopped")
}

func (r *Runner) run(j job) {
	start := time.Now()

	ctx := r.baseCtx
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("job panicked", "job", j.name, "panic", rec)
		}
	}()

	if err := j.fn(ctx); err != nil {
		r.logger.Error("job failed", "job", j.name, "error", err, "duration", time.Since(start))
		return
	}
	r.logger.Debug("job finished", "job", j.name, "duration", time.Since(start))
}
