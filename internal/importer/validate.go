package importer

import (
	"fmt"
	"time"

	"slotplan/internal/contract"
	"slotplan/internal/domain"
)

// ValidateImportSchema checks the scenario for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}

	errs = append(errs, validateTasks(schema.Tasks)...)
	errs = append(errs, validateClosedSlots(schema.ClosedSlots)...)
	errs = append(errs, validateSettings(schema.Settings)...)

	return errs
}

func validateTasks(tasks []contract.TaskPayload) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.TotalHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.total_hours must be positive", prefix))
		}
		if t.HoursPerSession <= 0 {
			errs = append(errs, fmt.Errorf("%s.hours_per_session must be positive", prefix))
		}
		if !domain.Priority(t.Priority).Valid() {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %d (expected 1, 2 or 3)", prefix, t.Priority))
		}
		if t.DeadlineDay < 1 {
			errs = append(errs, fmt.Errorf("%s.deadline_day must be at least 1", prefix))
		}
		if t.HoursCompleted < 0 {
			errs = append(errs, fmt.Errorf("%s.hours_completed must not be negative", prefix))
		}
		if t.TotalHours > 0 && t.HoursCompleted > t.TotalHours {
			errs = append(errs, fmt.Errorf("%s.hours_completed (%g) exceeds total_hours (%g)", prefix, t.HoursCompleted, t.TotalHours))
		}
	}

	return errs
}

func validateClosedSlots(slots []contract.ClosedSlotPayload) []error {
	var errs []error

	for i, s := range slots {
		prefix := fmt.Sprintf("closed_slots[%d]", i)

		slot := s.ToDomain()
		for _, err := range slot.Validate() {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
	}

	return errs
}

func validateSettings(s *contract.SettingsPayload) []error {
	if s == nil {
		return nil
	}
	var errs []error

	if s.BufferMinutes != nil && *s.BufferMinutes < 0 {
		errs = append(errs, fmt.Errorf("settings.buffer_minutes must not be negative"))
	}
	if s.MaxTasksPerDay != nil && *s.MaxTasksPerDay < 0 {
		errs = append(errs, fmt.Errorf("settings.max_tasks_per_day must not be negative"))
	}
	if s.HorizonDays != nil && *s.HorizonDays < 0 {
		errs = append(errs, fmt.Errorf("settings.horizon_days must not be negative"))
	}
	if s.StartDate != nil && *s.StartDate != domain.StartDateNow {
		if _, err := time.Parse("2006-01-02", *s.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("settings.start_date: invalid value %q (expected %q or YYYY-MM-DD)", *s.StartDate, domain.StartDateNow))
		}
	}

	return errs
}
