package service

import (
	"context"

	"slotplan/internal/contract"
	"slotplan/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	LogHours(ctx context.Context, id int, hours float64) (*domain.Task, error)
	Delete(ctx context.Context, id int) error
}

type SlotService interface {
	Create(ctx context.Context, s *domain.ClosedTimeSlot) error
	List(ctx context.Context) ([]*domain.ClosedTimeSlot, error)
	Delete(ctx context.Context, id int) error
}

type SettingsService interface {
	Get(ctx context.Context) (domain.SchedulerConfig, error)
	Update(ctx context.Context, cfg domain.SchedulerConfig) error
}

type PlanService interface {
	// Generate plans the stored tasks around the stored closed slots and,
	// when save is true, persists the run.
	Generate(ctx context.Context, overrides *contract.SettingsPayload, save bool) (*contract.ScheduleResponse, error)

	// Preview plans a self-contained request without touching stored state.
	Preview(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)

	// Validate checks the stored planning state without scheduling anything.
	Validate(ctx context.Context, overrides *contract.SettingsPayload) (*contract.ValidateResponse, error)

	// LastRun returns the most recently persisted run.
	LastRun(ctx context.Context) (*contract.ScheduleResponse, error)
}

// ImportResult holds the outcome of a scenario import.
type ImportResult struct {
	TaskCount       int
	SlotCount       int
	SettingsApplied bool
}

type ImportService interface {
	ImportScenario(ctx context.Context, filePath string, replace bool) (*ImportResult, error)
}
