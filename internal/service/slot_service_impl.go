package service

import (
	"context"
	"errors"
	"time"

	"slotplan/internal/domain"
	"slotplan/internal/repository"
)

type slotService struct {
	slots repository.ClosedSlotRepo
}

func NewSlotService(slots repository.ClosedSlotRepo) SlotService {
	return &slotService{slots: slots}
}

func (s *slotService) Create(ctx context.Context, slot *domain.ClosedTimeSlot) error {
	if slot.Scope == "" {
		slot.Scope = domain.ScopeAllDays
	}
	if errs := slot.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	slot.CreatedAt = time.Now().UTC()
	return s.slots.Create(ctx, slot)
}

func (s *slotService) List(ctx context.Context) ([]*domain.ClosedTimeSlot, error) {
	return s.slots.List(ctx)
}

func (s *slotService) Delete(ctx context.Context, id int) error {
	return s.slots.Delete(ctx, id)
}
