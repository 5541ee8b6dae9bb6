package importer

import (
	"time"

	"slotplan/internal/domain"
)

// ImportedScenario holds the domain objects produced from a validated
// scenario file, ready for persistence.
type ImportedScenario struct {
	Tasks       []*domain.Task
	ClosedSlots []*domain.ClosedTimeSlot
	Settings    *domain.SchedulerConfig
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
// IDs from the file are discarded so the store can assign fresh ones.
func Convert(schema *ImportSchema) *ImportedScenario {
	now := time.Now().UTC()

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, p := range schema.Tasks {
		t := p.ToDomain()
		t.ID = 0
		t.CreatedAt = now
		t.UpdatedAt = now
		tasks = append(tasks, &t)
	}

	slots := make([]*domain.ClosedTimeSlot, 0, len(schema.ClosedSlots))
	for _, p := range schema.ClosedSlots {
		s := p.ToDomain()
		s.ID = 0
		s.CreatedAt = now
		slots = append(slots, &s)
	}

	var settings *domain.SchedulerConfig
	if schema.Settings != nil {
		cfg := schema.Settings.Apply(domain.DefaultConfig())
		settings = &cfg
	}

	return &ImportedScenario{
		Tasks:       tasks,
		ClosedSlots: slots,
		Settings:    settings,
	}
}
