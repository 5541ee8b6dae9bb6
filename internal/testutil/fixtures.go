package testutil

import (
	"time"

	"slotplan/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithDeadlineDay(d int) TaskOption {
	return func(t *domain.Task) {
		t.DeadlineDay = d
	}
}

func WithProgress(hours float64, inProgress bool) TaskOption {
	return func(t *domain.Task) {
		t.HoursCompleted = hours
		t.InProgress = inProgress
	}
}

func NewTestTask(name string, totalHours, hoursPerSession float64, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		Name:            name,
		TotalHours:      totalHours,
		HoursPerSession: hoursPerSession,
		Priority:        domain.PriorityMedium,
		DeadlineDay:     7,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ClosedTimeSlot options
type SlotOption func(*domain.ClosedTimeSlot)

func WithWeekdays(days ...int) SlotOption {
	return func(s *domain.ClosedTimeSlot) {
		s.Scope = domain.ScopeWeekdays
		s.Weekdays = days
	}
}

func WithSpecificDate(date string) SlotOption {
	return func(s *domain.ClosedTimeSlot) {
		s.Scope = domain.ScopeSpecificDate
		s.SpecificDate = date
	}
}

func NewTestSlot(startHour, endHour int, opts ...SlotOption) *domain.ClosedTimeSlot {
	s := &domain.ClosedTimeSlot{
		StartHour: startHour,
		EndHour:   endHour,
		Scope:     domain.ScopeAllDays,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
