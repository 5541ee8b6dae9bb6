package service

import (
	"context"
	"fmt"

	"slotplan/internal/db"
	"slotplan/internal/importer"
	"slotplan/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

// ImportScenario loads a scenario file and persists it in one transaction.
// With replace set, existing tasks and closed slots are cleared first.
func (s *importService) ImportScenario(ctx context.Context, filePath string, replace bool) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	scenario := importer.Convert(schema)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		slots := repository.NewSQLiteClosedSlotRepo(tx)

		if replace {
			if err := tasks.DeleteAll(ctx); err != nil {
				return err
			}
			if err := slots.DeleteAll(ctx); err != nil {
				return err
			}
		}

		for _, t := range scenario.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Name, err)
			}
		}
		for _, slot := range scenario.ClosedSlots {
			if err := slots.Create(ctx, slot); err != nil {
				return fmt.Errorf("creating closed slot: %w", err)
			}
		}

		if scenario.Settings != nil {
			if err := repository.NewSQLiteSettingsRepo(tx).Update(ctx, *scenario.Settings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		TaskCount:       len(scenario.Tasks),
		SlotCount:       len(scenario.ClosedSlots),
		SettingsApplied: scenario.Settings != nil,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
