package domain

import (
	"fmt"
	"time"
)

// ScheduledSession records one placement of a task into a free block.
// Immutable once created.
type ScheduledSession struct {
	TaskID        int
	TaskName      string
	DayNumber     int
	StartMinutes  int // minutes from midnight
	EndMinutes    int
	DurationHours float64
	Priority      Priority

	// Progress is a snapshot after the session, e.g. "3.0/6.0".
	Progress string
}

// StartTime renders the session start as HH:MM.
func (s ScheduledSession) StartTime() string {
	return MinutesToClock(s.StartMinutes)
}

// EndTime renders the session end as HH:MM.
func (s ScheduledSession) EndTime() string {
	return MinutesToClock(s.EndMinutes)
}

// DaySchedule is the output for one evaluated calendar day.
type DaySchedule struct {
	DayNumber int // 1-based offset from the schedule start
	Date      time.Time
	Sessions  []ScheduledSession // ordered by start time
	Warnings  []string
}

// HasContent reports whether the day carries any sessions or warnings.
func (d *DaySchedule) HasContent() bool {
	return len(d.Sessions) > 0 || len(d.Warnings) > 0
}

// MinutesToClock converts minutes from midnight to HH:MM.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatProgress renders a completed/total snapshot like "3.0/6.0".
func FormatProgress(completed, total float64) string {
	return fmt.Sprintf("%.1f/%.1f", completed, total)
}
