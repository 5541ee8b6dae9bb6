package service

import (
	"context"
	"errors"

	"slotplan/internal/domain"
	"slotplan/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.SchedulerConfig, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, cfg domain.SchedulerConfig) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return s.settings.Update(ctx, cfg)
}
