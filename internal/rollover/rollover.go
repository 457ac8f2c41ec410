// Package rollover resets the "words learned today" counter at local
// midnight.
package rollover

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Roller is implemented by progress.Engine.
type Roller interface {
	Rollover() bool
}

// Scheduler runs the daily rollover job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	roller    Roller
	log       *zap.Logger
	job       *gocron.Job
}

// New creates a scheduler that fires at midnight in loc.
func New(roller Roller, loc *time.Location, log *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		roller:    roller,
		log:       log,
	}
}

// Start rolls over once immediately (the process may have slept through a
// midnight) and then schedules the daily job.
func (s *Scheduler) Start() error {
	s.RunNow()

	job, err := s.scheduler.Every(1).Day().At("00:00").Do(s.RunNow)
	if err != nil {
		return fmt.Errorf("schedule rollover: %w", err)
	}
	s.job = job
	s.scheduler.StartAsync()
	s.log.Info("day rollover scheduled", zap.Time("next_run", job.NextRun()))
	return nil
}

// Stop terminates the scheduled job.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// NextRun returns when the job fires next, or the zero time before Start.
func (s *Scheduler) NextRun() time.Time {
	if s.job == nil {
		return time.Time{}
	}
	return s.job.NextRun()
}

// RunNow performs a rollover and reports whether the counter was reset.
func (s *Scheduler) RunNow() bool {
	rolled := s.roller.Rollover()
	if rolled {
		s.log.Info("today counter reset for new day")
	}
	return rolled
}
