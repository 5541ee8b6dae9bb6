package domain

import (
	"fmt"
	"time"
)

// StartDateNow is the sentinel accepted in place of a concrete start date.
const StartDateNow = "now"

// SchedulerConfig tunes a scheduling run.
type SchedulerConfig struct {
	// BufferMinutes is inserted after each placed session before the next
	// session may start in the same block.
	BufferMinutes int

	// MaxNewTaskStartsPerDay caps how many not-yet-started tasks may begin
	// a session on a single day. Continuing tasks are not counted.
	MaxNewTaskStartsPerDay int

	// StartDate is "now" or a YYYY-MM-DD date.
	StartDate string

	// HorizonDays bounds the day loop. Zero means derive it from the
	// latest task deadline plus a grace period.
	HorizonDays int
}

// DefaultConfig returns the stock scheduling defaults.
func DefaultConfig() SchedulerConfig {
	return SchedulerConfig{
		BufferMinutes:          15,
		MaxNewTaskStartsPerDay: 2,
		StartDate:              StartDateNow,
	}
}

// ResolveStartDate turns the configured start date into a concrete
// midnight timestamp. The caller supplies "now" so the core itself has no
// clock dependency.
func (c SchedulerConfig) ResolveStartDate(now time.Time) (time.Time, error) {
	if c.StartDate == "" || c.StartDate == StartDateNow {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	d, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q (expected %q or YYYY-MM-DD)", c.StartDate, StartDateNow)
	}
	return d, nil
}

// Validate checks the configuration invariants.
func (c SchedulerConfig) Validate() []error {
	var errs []error

	if c.BufferMinutes < 0 {
		errs = append(errs, fmt.Errorf("buffer_minutes must not be negative, got %d", c.BufferMinutes))
	}
	if c.MaxNewTaskStartsPerDay < 0 {
		errs = append(errs, fmt.Errorf("max_tasks_per_day must not be negative, got %d", c.MaxNewTaskStartsPerDay))
	}
	if c.HorizonDays < 0 {
		errs = append(errs, fmt.Errorf("horizon days must not be negative, got %d", c.HorizonDays))
	}
	if c.StartDate != "" && c.StartDate != StartDateNow {
		if _, err := time.Parse("2006-01-02", c.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("invalid start_date %q (expected %q or YYYY-MM-DD)", c.StartDate, StartDateNow))
		}
	}

	return errs
}
