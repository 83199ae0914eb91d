// Package tracker holds the habit business logic: creation with input
// validation, day rollover, capped increments with an edge-triggered
// completion signal, and an observer feed that pushes a fresh snapshot after
// every mutation.
package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellspring/internal/constants"
	"wellspring/internal/models"
	"wellspring/internal/storage"
	"wellspring/internal/validation"
)

// Service wraps a storage provider with the habit rules.
type Service struct {
	store storage.Provider
	now   func() time.Time

	mu   sync.Mutex
	subs map[int]func([]models.Habit)
	next int
}

func New(store storage.Provider) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		subs:  make(map[int]func([]models.Habit)),
	}
}

// NewWithClock is used by tests to control the rollover date.
func NewWithClock(store storage.Provider, now func() time.Time) *Service {
	s := New(store)
	s.now = now
	return s
}

func (s *Service) today() string {
	return s.now().Format(constants.DateFormat)
}

// Habits returns all habits ordered by name, applying the day rollover first:
// any habit whose LastUpdated is not today has its count reset to 0 and its
// date stamped, persisted before the list is returned.
func (s *Service) Habits() ([]models.Habit, error) {
	habits, err := s.store.GetAllHabits()
	if err != nil {
		return nil, err
	}

	today := s.today()
	for i := range habits {
		if habits[i].LastUpdated != today {
			habits[i].CurrentCount = 0
			habits[i].LastUpdated = today
			if err := s.store.UpdateHabit(habits[i]); err != nil {
				return nil, err
			}
		}
	}
	return habits, nil
}

// Get fetches a single habit without applying rollover.
func (s *Service) Get(id string) (models.Habit, error) {
	return s.store.GetHabit(id)
}

// Add validates and creates a new habit with zero progress.
func (s *Service) Add(name string, targetCount int) (models.Habit, error) {
	trimmed, err := validation.HabitName(name)
	if err != nil {
		return models.Habit{}, err
	}
	if targetCount <= 0 {
		return models.Habit{}, errors.New("target count must be positive")
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        trimmed,
		TargetCount: targetCount,
		LastUpdated: s.today(),
	}
	if err := s.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}

	s.notify()
	return habit, nil
}

// Edit renames a habit and/or changes its target. Progress is kept.
func (s *Service) Edit(id, name string, targetCount int) (models.Habit, error) {
	trimmed, err := validation.HabitName(name)
	if err != nil {
		return models.Habit{}, err
	}
	if targetCount <= 0 {
		return models.Habit{}, errors.New("target count must be positive")
	}

	habit, err := s.store.GetHabit(id)
	if err != nil {
		return models.Habit{}, err
	}
	habit.Name = trimmed
	habit.TargetCount = targetCount
	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, err
	}

	s.notify()
	return habit, nil
}

// Increment applies the day rollover, then bumps the count unless the target
// is already met; the count never exceeds the target. The returned bool is
// true only when this call crossed the completion threshold, so a caller can
// fire a one-shot celebration exactly once per crossing.
func (s *Service) Increment(id string) (models.Habit, bool, error) {
	habit, err := s.store.GetHabit(id)
	if err != nil {
		return models.Habit{}, false, err
	}

	today := s.today()
	if habit.LastUpdated != today {
		habit.CurrentCount = 0
		habit.LastUpdated = today
	}

	wasCompleted := habit.IsCompleted()
	if habit.CurrentCount < habit.TargetCount {
		habit.CurrentCount++
	}

	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, false, err
	}

	s.notify()
	return habit, habit.IsCompleted() && !wasCompleted, nil
}

// Delete removes a habit. Deleting an already-removed habit is a no-op.
func (s *Service) Delete(id string) error {
	if err := s.store.DeleteHabit(id); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Subscribe registers an observer that receives the current name-ordered
// snapshot after every mutation. The returned function unsubscribes it.
// Snapshots are delivered synchronously on the mutating call.
func (s *Service) Subscribe(fn func([]models.Habit)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) notify() {
	s.mu.Lock()
	if len(s.subs) == 0 {
		s.mu.Unlock()
		return
	}
	fns := make([]func([]models.Habit), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	habits, err := s.Habits()
	if err != nil {
		return
	}
	for _, fn := range fns {
		fn(habits)
	}
}
