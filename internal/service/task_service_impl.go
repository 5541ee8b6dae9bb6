package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotplan/internal/domain"
	"slotplan/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Priority == 0 {
		t.Priority = domain.PriorityMedium
	}
	if errs := t.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if errs := t.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// LogHours records completed work against a task. Progress is clamped to
// the task's target; reaching it clears the in-progress flag.
func (s *taskService) LogHours(ctx context.Context, id int, hours float64) (*domain.Task, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("logged hours must be positive, got %g", hours)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.HoursCompleted += hours
	if t.HoursCompleted > t.TotalHours {
		t.HoursCompleted = t.TotalHours
	}
	t.InProgress = !t.IsComplete()

	if err := s.tasks.UpdateProgress(ctx, t.ID, t.HoursCompleted, t.InProgress); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id int) error {
	return s.tasks.Delete(ctx, id)
}
