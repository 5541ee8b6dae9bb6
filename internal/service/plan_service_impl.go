package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"slotplan/internal/contract"
	"slotplan/internal/db"
	"slotplan/internal/domain"
	"slotplan/internal/repository"
	"slotplan/internal/scheduler"
)

type planService struct {
	tasks    repository.TaskRepo
	slots    repository.ClosedSlotRepo
	settings repository.SettingsRepo
	runs     repository.ScheduleRunRepo
	uow      db.UnitOfWork
	now      func() time.Time
}

func NewPlanService(
	tasks repository.TaskRepo,
	slots repository.ClosedSlotRepo,
	settings repository.SettingsRepo,
	runs repository.ScheduleRunRepo,
	uow db.UnitOfWork,
) PlanService {
	return &planService{
		tasks:    tasks,
		slots:    slots,
		settings: settings,
		runs:     runs,
		uow:      uow,
		now:      time.Now,
	}
}

func (s *planService) Generate(ctx context.Context, overrides *contract.SettingsPayload, save bool) (*contract.ScheduleResponse, error) {
	tasks, slots, cfg, err := s.loadState(ctx, overrides)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result, err := scheduler.Schedule(tasks, slots, cfg, now)
	if err != nil {
		return nil, err
	}

	resp := contract.ResponseFromResult(result)

	if save {
		run := &domain.ScheduleRun{
			ID:          uuid.New().String(),
			StartDate:   result.StartDate,
			GeneratedAt: now,
			Days:        result.Days,
			Warnings:    result.Warnings,
		}
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteScheduleRunRepo(tx).Save(ctx, run)
		})
		if err != nil {
			return nil, fmt.Errorf("saving schedule run: %w", err)
		}
		resp.RunID = run.ID
		resp.GeneratedAt = run.GeneratedAt.Format("2006-01-02 15:04")
	}

	return resp, nil
}

func (s *planService) Preview(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	tasks := make([]domain.Task, 0, len(req.Tasks))
	for _, p := range req.Tasks {
		tasks = append(tasks, p.ToDomain())
	}
	slots := make([]domain.ClosedTimeSlot, 0, len(req.ClosedSlots))
	for _, p := range req.ClosedSlots {
		slots = append(slots, p.ToDomain())
	}
	cfg := req.Settings.Apply(domain.DefaultConfig())

	result, err := scheduler.Schedule(tasks, slots, cfg, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return contract.ResponseFromResult(result), nil
}

func (s *planService) Validate(ctx context.Context, overrides *contract.SettingsPayload) (*contract.ValidateResponse, error) {
	tasks, slots, cfg, err := s.loadState(ctx, overrides)
	if err != nil {
		return nil, err
	}

	warnings, err := scheduler.Validate(tasks, slots, cfg, s.now().UTC())
	if err != nil {
		return &contract.ValidateResponse{
			Valid:  false,
			Errors: strings.Split(err.Error(), "\n"),
		}, nil
	}
	return &contract.ValidateResponse{Valid: true, Warnings: warnings}, nil
}

func (s *planService) LastRun(ctx context.Context) (*contract.ScheduleResponse, error) {
	run, err := s.runs.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return contract.ResponseFromRun(run), nil
}

func (s *planService) loadState(ctx context.Context, overrides *contract.SettingsPayload) ([]domain.Task, []domain.ClosedTimeSlot, domain.SchedulerConfig, error) {
	stored, err := s.tasks.List(ctx)
	if err != nil {
		return nil, nil, domain.SchedulerConfig{}, fmt.Errorf("loading tasks: %w", err)
	}
	tasks := make([]domain.Task, 0, len(stored))
	for _, t := range stored {
		tasks = append(tasks, *t)
	}

	storedSlots, err := s.slots.List(ctx)
	if err != nil {
		return nil, nil, domain.SchedulerConfig{}, fmt.Errorf("loading closed slots: %w", err)
	}
	slots := make([]domain.ClosedTimeSlot, 0, len(storedSlots))
	for _, s := range storedSlots {
		slots = append(slots, *s)
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, domain.SchedulerConfig{}, fmt.Errorf("loading settings: %w", err)
	}
	cfg = overrides.Apply(cfg)

	return tasks, slots, cfg, nil
}
