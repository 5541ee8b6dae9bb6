package repository

import (
	"context"
	"errors"

	"slotplan/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListIncomplete(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	UpdateProgress(ctx context.Context, id int, hoursCompleted float64, inProgress bool) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

type ClosedSlotRepo interface {
	Create(ctx context.Context, s *domain.ClosedTimeSlot) error
	GetByID(ctx context.Context, id int) (*domain.ClosedTimeSlot, error)
	List(ctx context.Context) ([]*domain.ClosedTimeSlot, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (domain.SchedulerConfig, error)
	Update(ctx context.Context, cfg domain.SchedulerConfig) error
}

type ScheduleRunRepo interface {
	Save(ctx context.Context, run *domain.ScheduleRun) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleRun, error)
	Latest(ctx context.Context) (*domain.ScheduleRun, error)
	List(ctx context.Context, limit int) ([]*domain.ScheduleRun, error)
	Delete(ctx context.Context, id string) error
}
