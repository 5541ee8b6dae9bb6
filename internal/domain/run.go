package domain

import "time"

// ScheduleRun is a persisted scheduling result, identified by a UUID.
type ScheduleRun struct {
	ID          string
	StartDate   time.Time
	GeneratedAt time.Time
	Days        []DaySchedule
	Warnings    []string
}
