package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/logger"
)

type dailyJob struct {
	name   string
	hour   int
	minute int
	job    contract.Job
	next   time.Time
}

type scheduler struct {
	loc      *time.Location
	now      func() time.Time
	jobs     []*dailyJob
	stopChan chan struct{}
	done     chan struct{}
	running  bool
	mu       sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
}

func newScheduler(loc *time.Location, now func() time.Time) *scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &scheduler{
		loc: loc,
		now: now,
	}
}

// Register adds job to fire every day at clock (HH:MM) in the scheduler's
// location. Jobs must be registered before Start.
func (s *scheduler) Register(name, clock string, job contract.Job) error {
	hour, minute, err := parseClock(clock)
	if err != nil {
		return fmt.Errorf("invalid time for job %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, &dailyJob{name: name, hour: hour, minute: minute, job: job})
	return nil
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	now := s.now()
	for _, j := range s.jobs {
		j.next = nextDailyFire(j.hour, j.minute, now, s.loc)
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true

	logger.Info("scheduler starting", "jobs", len(s.jobs), "location", s.loc.String())
	go s.mainLoop(s.stopChan, s.done)
}

// Stop ends the loop and cancels the context handed to running jobs. It
// does not wait for those jobs to return.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	logger.Info("scheduler stopping")
	close(s.stopChan)
	s.cancel()
	s.running = false
	done := s.done
	s.mu.Unlock()

	<-done
}

func (s *scheduler) mainLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		fireAt, due := s.nextDue()
		if len(due) == 0 {
			logger.Warn("no jobs registered, scheduler idle")
			<-stop
			return
		}

		logger.Info("next scheduled run", "at", fireAt.Format(time.RFC3339), "jobs", jobNames(due))

		timer := time.NewTimer(fireAt.Sub(s.now()))
		select {
		case <-timer.C:
			s.runJobs(due, fireAt)
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextDue returns the earliest fire time and every job scheduled for it.
func (s *scheduler) nextDue() (time.Time, []*dailyJob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var earliest time.Time
	var due []*dailyJob
	for _, j := range s.jobs {
		switch {
		case len(due) == 0 || j.next.Before(earliest):
			earliest = j.next
			due = []*dailyJob{j}
		case j.next.Equal(earliest):
			due = append(due, j)
		}
	}
	return earliest, due
}

// runJobs starts each job in its own goroutine and moves it to its next
// fire time, strictly after this one. A late timer fires once; missed
// days are not replayed.
func (s *scheduler) runJobs(due []*dailyJob, fireAt time.Time) {
	s.mu.Lock()
	ctx := s.ctx
	after := s.now()
	if after.Before(fireAt) {
		after = fireAt
	}
	for _, j := range due {
		j.next = nextDailyFire(j.hour, j.minute, after, s.loc)
	}
	s.mu.Unlock()

	for _, j := range due {
		go func(j *dailyJob) {
			logger.Info("running scheduled job", "job", j.name)
			if err := j.job.Run(ctx); err != nil {
				logger.Error("scheduled job failed", "job", j.name, "error", err)
				return
			}
			logger.Info("scheduled job finished", "job", j.name)
		}(j)
	}
}

// nextDailyFire returns the first hour:minute in loc strictly after t.
func nextDailyFire(hour, minute int, t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(t) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}

func parseClock(clock string) (int, int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format %q, use HH:MM", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour %q", parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute %q", parts[1])
	}

	return hour, minute, nil
}

func jobNames(jobs []*dailyJob) []string {
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.name)
	}
	return names
}
