package scheduler

import (
	"math"

	"slotplan/internal/domain"
)

// PlaceSession finds a home for one session of the task in the day's free
// blocks. Blocks are scanned in start-time order and the first one that can
// hold the session wins (earliest-start, not best-fit). The chosen block is
// shrunk by the session plus the buffer; a buffer overrunning the block end
// simply exhausts the block.
//
// The session length is hoursPerSession clamped to the task's remaining
// need, so a final partial session occupies exactly the remainder and
// progress never overshoots the target. Sessions are never split across
// blocks: a task that fits nowhere today is deferred whole, signaled by a
// nil return.
func PlaceSession(task *domain.Task, blocks []AvailableBlock, bufferMinutes int, dayNumber int) *domain.ScheduledSession {
	hours := sessionHours(task)
	durationMin := hoursToMinutes(hours)
	if durationMin <= 0 {
		return nil
	}

	for i := range blocks {
		block := &blocks[i]
		if !block.CanFit(durationMin) {
			continue
		}

		start := block.Start
		end := start + durationMin

		block.Start = end + bufferMinutes
		if block.Start > block.End {
			block.Start = block.End
		}

		return &domain.ScheduledSession{
			TaskID:        task.ID,
			TaskName:      task.Name,
			DayNumber:     dayNumber,
			StartMinutes:  start,
			EndMinutes:    end,
			DurationHours: hours,
			Priority:      task.Priority,
			Progress:      domain.FormatProgress(task.HoursCompleted+hours, task.TotalHours),
		}
	}

	return nil
}

// sessionHours returns the effective session length for the task's next
// placement: the configured session size, clamped to the remaining need.
func sessionHours(task *domain.Task) float64 {
	return math.Min(task.HoursPerSession, task.RemainingHours())
}

func hoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}
