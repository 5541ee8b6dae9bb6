package scheduler

import (
	"errors"
	"fmt"
	"time"

	"slotplan/internal/domain"
)

// horizonGraceDays pads the derived horizon past the latest deadline so
// overdue work still gets a chance to finish before the run stops.
const horizonGraceDays = 10

// Result is the output of a full scheduling run.
type Result struct {
	StartDate time.Time

	// Days holds one record per evaluated day, in day order.
	Days []domain.DaySchedule

	// Warnings are run-level: feasibility findings and tasks left
	// incomplete when the horizon was exhausted.
	Warnings []string

	// Tasks carries the final progress snapshot of every input task, in
	// input order. The caller's slice is never mutated.
	Tasks []domain.Task
}

// Schedule runs the day loop from the resolved start date until every task
// completes or the horizon is exhausted. The supplied "now" is only read
// when the config's start date is "now"; the core has no other clock
// dependency. Configuration errors abort before any scheduling happens.
func Schedule(tasks []domain.Task, slots []domain.ClosedTimeSlot, cfg domain.SchedulerConfig, now time.Time) (*Result, error) {
	if err := validateInputs(tasks, slots, cfg); err != nil {
		return nil, err
	}

	startDate, err := cfg.ResolveStartDate(now)
	if err != nil {
		return nil, err
	}

	result := &Result{
		StartDate: startDate,
		Warnings:  feasibilityWarnings(tasks, slots, cfg, startDate),
	}

	// The run owns a private copy of the mutable progress fields, so
	// concurrent runs over the same inputs never interfere.
	working := make([]*domain.Task, len(tasks))
	for i := range tasks {
		clone := tasks[i]
		working[i] = &clone
	}

	horizon := horizonDays(tasks, cfg)
	for dayNumber := 1; dayNumber <= horizon && anyIncomplete(working); dayNumber++ {
		date := startDate.AddDate(0, 0, dayNumber-1)
		day := PlanDay(date, dayNumber, working, slots, cfg)
		result.Days = append(result.Days, day)
	}

	for _, t := range working {
		if !t.IsComplete() {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Task %q did not complete within the %d-day horizon (%s done)",
				t.Name, horizon, domain.FormatProgress(t.HoursCompleted, t.TotalHours)))
		}
		result.Tasks = append(result.Tasks, *t)
	}

	return result, nil
}

// Validate runs the availability and feasibility checks of a full run
// without mutating any task progress, for pre-flight use.
func Validate(tasks []domain.Task, slots []domain.ClosedTimeSlot, cfg domain.SchedulerConfig, now time.Time) ([]string, error) {
	if err := validateInputs(tasks, slots, cfg); err != nil {
		return nil, err
	}

	startDate, err := cfg.ResolveStartDate(now)
	if err != nil {
		return nil, err
	}

	return feasibilityWarnings(tasks, slots, cfg, startDate), nil
}

// validateInputs collects all configuration errors; any of them rejects
// the run before scheduling begins.
func validateInputs(tasks []domain.Task, slots []domain.ClosedTimeSlot, cfg domain.SchedulerConfig) error {
	var errs []error

	errs = append(errs, cfg.Validate()...)
	for i := range slots {
		errs = append(errs, slots[i].Validate()...)
	}
	for i := range tasks {
		errs = append(errs, tasks[i].Validate()...)
	}

	return errors.Join(errs...)
}

// feasibilityWarnings reports tasks whose next session cannot fit the
// longest free block on any day of the horizon, and tasks that cannot
// finish by their deadline even if worked every remaining day.
func feasibilityWarnings(tasks []domain.Task, slots []domain.ClosedTimeSlot, cfg domain.SchedulerConfig, startDate time.Time) []string {
	horizon := horizonDays(tasks, cfg)

	// Date-scoped closures make availability vary day to day, so scan the
	// whole horizon for the best block anywhere.
	longestMin := 0
	for dayNumber := 1; dayNumber <= horizon; dayNumber++ {
		date := startDate.AddDate(0, 0, dayNumber-1)
		if m := LongestBlockMinutes(date, slots); m > longestMin {
			longestMin = m
		}
	}

	var warnings []string
	for i := range tasks {
		t := &tasks[i]
		if t.IsComplete() {
			continue
		}

		sessionMin := hoursToMinutes(sessionHours(t))
		if sessionMin > longestMin {
			warnings = append(warnings, fmt.Sprintf(
				"Task %q needs a %gh session, but the longest free block in the next %d days is %.1fh",
				t.Name, sessionHours(t), horizon, float64(longestMin)/60))
		}

		if t.RemainingSessions() > t.DeadlineDay {
			warnings = append(warnings, fmt.Sprintf(
				"Task %q needs %d more sessions but its deadline is day %d",
				t.Name, t.RemainingSessions(), t.DeadlineDay))
		}
	}
	return warnings
}

// horizonDays returns the configured horizon, or the latest deadline plus a
// grace period when unset. At least one day is always evaluated.
func horizonDays(tasks []domain.Task, cfg domain.SchedulerConfig) int {
	if cfg.HorizonDays > 0 {
		return cfg.HorizonDays
	}
	maxDeadline := 0
	for i := range tasks {
		if tasks[i].DeadlineDay > maxDeadline {
			maxDeadline = tasks[i].DeadlineDay
		}
	}
	horizon := maxDeadline + horizonGraceDays
	if horizon < 1 {
		horizon = 1
	}
	return horizon
}

func anyIncomplete(tasks []*domain.Task) bool {
	for _, t := range tasks {
		if !t.IsComplete() {
			return true
		}
	}
	return false
}
