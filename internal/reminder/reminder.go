// Package reminder is a thin binding to a cron-backed repeating trigger. It
// is not a scheduler implementation: one fixed registration identity, and a
// re-schedule always replaces the previous registration rather than stacking
// a second one.
package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron

	mu        sync.Mutex
	entry     cron.EntryID
	scheduled bool
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// ScheduleRepeating registers the periodic trigger. Calling it again without
// Cancel replaces the existing registration.
func (s *Scheduler) ScheduleRepeating(intervalMinutes int, job func()) error {
	if intervalMinutes <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduled {
		s.cron.Remove(s.entry)
		s.scheduled = false
	}

	spec := fmt.Sprintf("@every %dm", intervalMinutes)
	entry, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return err
	}
	s.entry = entry
	s.scheduled = true
	return nil
}

// Cancel deregisters the trigger. It does not interrupt a firing already in
// progress. Safe to call when nothing is scheduled.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduled {
		s.cron.Remove(s.entry)
		s.scheduled = false
	}
}

// Scheduled reports whether a trigger is currently registered.
func (s *Scheduler) Scheduled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}

// Entries returns the number of live cron registrations; at most one.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
