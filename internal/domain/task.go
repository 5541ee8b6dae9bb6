package domain

import (
	"fmt"
	"math"
	"time"
)

// Task is one unit of hour-denominated work to be spread across days.
// The scheduler mutates only HoursCompleted and InProgress; everything
// else is owned by the caller.
type Task struct {
	ID              int
	Name            string
	TotalHours      float64
	HoursPerSession float64
	Priority        Priority
	DeadlineDay     int // inclusive day offset from schedule start (day 1 = first day)
	HoursCompleted  float64
	InProgress      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingHours returns the hours still needed, never negative.
func (t *Task) RemainingHours() float64 {
	rem := t.TotalHours - t.HoursCompleted
	if rem < 0 {
		return 0
	}
	return rem
}

// IsComplete reports whether the task has reached its target hours.
func (t *Task) IsComplete() bool {
	return t.HoursCompleted >= t.TotalHours
}

// RemainingSessions estimates how many more sessions the task needs,
// rounding partial sessions up.
func (t *Task) RemainingSessions() int {
	if t.HoursPerSession <= 0 {
		return 0
	}
	return int(math.Ceil(t.RemainingHours() / t.HoursPerSession))
}

// UrgencyScore is a day-relative deadline-pressure measure; lower is more
// urgent. A negative score means the task cannot finish by its deadline
// even if worked every remaining day.
func (t *Task) UrgencyScore(currentDay int) float64 {
	return float64(t.DeadlineDay-t.RemainingSessions()) - float64(currentDay)
}

// Validate checks the invariants a task must satisfy before a run starts.
func (t *Task) Validate() []error {
	var errs []error

	if t.Name == "" {
		errs = append(errs, fmt.Errorf("task %d: name is required", t.ID))
	}
	if t.TotalHours <= 0 {
		errs = append(errs, fmt.Errorf("task %q: total_hours must be positive, got %g", t.Name, t.TotalHours))
	}
	if t.HoursPerSession <= 0 {
		errs = append(errs, fmt.Errorf("task %q: hours_per_session must be positive, got %g", t.Name, t.HoursPerSession))
	}
	if !t.Priority.Valid() {
		errs = append(errs, fmt.Errorf("task %q: invalid priority %d", t.Name, int(t.Priority)))
	}
	if t.DeadlineDay < 1 {
		errs = append(errs, fmt.Errorf("task %q: deadline_day must be >= 1, got %d", t.Name, t.DeadlineDay))
	}
	if t.HoursCompleted < 0 {
		errs = append(errs, fmt.Errorf("task %q: hours_completed must not be negative, got %g", t.Name, t.HoursCompleted))
	}
	if t.TotalHours > 0 && t.HoursCompleted > t.TotalHours {
		errs = append(errs, fmt.Errorf("task %q: hours_completed (%g) exceeds total_hours (%g)", t.Name, t.HoursCompleted, t.TotalHours))
	}

	return errs
}
