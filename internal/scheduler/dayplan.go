package scheduler

import (
	"fmt"
	"sort"
	"time"

	"slotplan/internal/domain"
)

// PlanDay allocates sessions for one calendar day: resolve the day's free
// blocks, rank the incomplete tasks, then place sessions in rank order.
// Task progress is mutated in place; the day's sessions and warnings are
// returned as an immutable record.
//
// Tasks deferred by the new-start cap are skipped silently; tasks that were
// attempted but found no suitable block produce a placement warning. The
// two causes are therefore distinguishable in the output.
func PlanDay(date time.Time, dayNumber int, tasks []*domain.Task, slots []domain.ClosedTimeSlot, cfg domain.SchedulerConfig) domain.DaySchedule {
	day := domain.DaySchedule{
		DayNumber: dayNumber,
		Date:      date,
	}

	blocks := ResolveAvailability(date, slots)

	var incomplete []*domain.Task
	for _, t := range tasks {
		if !t.IsComplete() {
			incomplete = append(incomplete, t)
		}
	}
	ranked := RankTasks(incomplete, dayNumber)

	newStartsToday := 0
	for _, task := range ranked {
		if !task.InProgress && newStartsToday >= cfg.MaxNewTaskStartsPerDay {
			// Deferred by the start cap; not a warning.
			continue
		}

		if dayNumber > task.DeadlineDay {
			day.Warnings = append(day.Warnings, fmt.Sprintf(
				"Task %q is past its deadline (day %d) and still needs %gh",
				task.Name, task.DeadlineDay, task.RemainingHours()))
			// Overdue work is flagged, not refused.
		}

		session := PlaceSession(task, blocks, cfg.BufferMinutes, dayNumber)
		if session == nil {
			day.Warnings = append(day.Warnings, fmt.Sprintf(
				"Cannot fit %q today: no free block holds a %gh session",
				task.Name, task.HoursPerSession))
			continue
		}

		wasInProgress := task.InProgress
		task.HoursCompleted += session.DurationHours
		if task.HoursCompleted > task.TotalHours {
			task.HoursCompleted = task.TotalHours
		}
		task.InProgress = !task.IsComplete()

		if !wasInProgress {
			newStartsToday++
		}

		day.Sessions = append(day.Sessions, *session)
	}

	// A later-ranked task can land in an earlier block than its
	// predecessor, so order by clock time before emitting.
	sort.SliceStable(day.Sessions, func(i, j int) bool {
		return day.Sessions[i].StartMinutes < day.Sessions[j].StartMinutes
	})

	return day
}
