package contract

import (
	"slotplan/internal/domain"
	"slotplan/internal/scheduler"
)

// TaskPayload is the wire form of a task. Field names match the JSON
// accepted and produced by the planning commands.
type TaskPayload struct {
	ID              int     `json:"id,omitempty"`
	Name            string  `json:"name"`
	TotalHours      float64 `json:"total_hours"`
	HoursPerSession float64 `json:"hours_per_session"`
	Priority        int     `json:"priority"`
	DeadlineDay     int     `json:"deadline_day"`
	HoursCompleted  float64 `json:"hours_completed,omitempty"`
	InProgress      bool    `json:"in_progress,omitempty"`
}

// ClosedSlotPayload is the wire form of a closed time slot.
type ClosedSlotPayload struct {
	ID           int    `json:"id,omitempty"`
	StartHour    int    `json:"start_hour"`
	StartMinute  int    `json:"start_minute"`
	EndHour      int    `json:"end_hour"`
	EndMinute    int    `json:"end_minute"`
	AppliesTo    string `json:"applies_to"`
	Weekdays     []int  `json:"weekdays,omitempty"`
	SpecificDate string `json:"specific_date,omitempty"`
}

// SettingsPayload carries optional overrides for a run. Nil fields fall
// back to the stored settings.
type SettingsPayload struct {
	BufferMinutes  *int    `json:"buffer_minutes,omitempty"`
	MaxTasksPerDay *int    `json:"max_tasks_per_day,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	HorizonDays    *int    `json:"horizon_days,omitempty"`
}

// ScheduleRequest is a self-contained planning request: everything the
// scheduler needs without touching stored state.
type ScheduleRequest struct {
	Tasks       []TaskPayload       `json:"tasks"`
	ClosedSlots []ClosedSlotPayload `json:"closed_slots"`
	Settings    *SettingsPayload    `json:"settings,omitempty"`
}

type SessionPayload struct {
	TaskID        int     `json:"task_id"`
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
	Priority      int     `json:"priority"`
	Progress      string  `json:"progress"`
}

type DayPayload struct {
	DayNumber      int              `json:"day_number"`
	Date           string           `json:"date"`
	ScheduledTasks []SessionPayload `json:"scheduled_tasks"`
	Warnings       []string         `json:"warnings,omitempty"`
}

type ScheduleResponse struct {
	RunID       string        `json:"run_id,omitempty"`
	StartDate   string        `json:"start_date"`
	GeneratedAt string        `json:"generated_at,omitempty"`
	Schedule    []DayPayload  `json:"schedule"`
	Warnings    []string      `json:"warnings"`
	Tasks       []TaskPayload `json:"tasks,omitempty"`
}

type ValidateResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings"`
}

// ToDomain converts the payload to a domain task.
func (p TaskPayload) ToDomain() domain.Task {
	return domain.Task{
		ID:              p.ID,
		Name:            p.Name,
		TotalHours:      p.TotalHours,
		HoursPerSession: p.HoursPerSession,
		Priority:        domain.Priority(p.Priority),
		DeadlineDay:     p.DeadlineDay,
		HoursCompleted:  p.HoursCompleted,
		InProgress:      p.InProgress,
	}
}

// TaskFromDomain converts a domain task to its wire form.
func TaskFromDomain(t domain.Task) TaskPayload {
	return TaskPayload{
		ID:              t.ID,
		Name:            t.Name,
		TotalHours:      t.TotalHours,
		HoursPerSession: t.HoursPerSession,
		Priority:        int(t.Priority),
		DeadlineDay:     t.DeadlineDay,
		HoursCompleted:  t.HoursCompleted,
		InProgress:      t.InProgress,
	}
}

// ToDomain converts the payload to a domain closed slot.
func (p ClosedSlotPayload) ToDomain() domain.ClosedTimeSlot {
	return domain.ClosedTimeSlot{
		ID:           p.ID,
		StartHour:    p.StartHour,
		StartMinute:  p.StartMinute,
		EndHour:      p.EndHour,
		EndMinute:    p.EndMinute,
		Scope:        domain.SlotScope(p.AppliesTo),
		Weekdays:     p.Weekdays,
		SpecificDate: p.SpecificDate,
	}
}

// SlotFromDomain converts a domain closed slot to its wire form.
func SlotFromDomain(s domain.ClosedTimeSlot) ClosedSlotPayload {
	return ClosedSlotPayload{
		ID:           s.ID,
		StartHour:    s.StartHour,
		StartMinute:  s.StartMinute,
		EndHour:      s.EndHour,
		EndMinute:    s.EndMinute,
		AppliesTo:    string(s.Scope),
		Weekdays:     s.Weekdays,
		SpecificDate: s.SpecificDate,
	}
}

// Apply overlays the non-nil override fields onto a config.
func (p *SettingsPayload) Apply(cfg domain.SchedulerConfig) domain.SchedulerConfig {
	if p == nil {
		return cfg
	}
	if p.BufferMinutes != nil {
		cfg.BufferMinutes = *p.BufferMinutes
	}
	if p.MaxTasksPerDay != nil {
		cfg.MaxNewTaskStartsPerDay = *p.MaxTasksPerDay
	}
	if p.StartDate != nil {
		cfg.StartDate = *p.StartDate
	}
	if p.HorizonDays != nil {
		cfg.HorizonDays = *p.HorizonDays
	}
	return cfg
}

// ResponseFromResult converts a scheduler result to its wire form.
func ResponseFromResult(r *scheduler.Result) *ScheduleResponse {
	resp := &ScheduleResponse{
		StartDate: r.StartDate.Format("2006-01-02"),
		Schedule:  make([]DayPayload, 0, len(r.Days)),
		Warnings:  r.Warnings,
	}
	for _, day := range r.Days {
		resp.Schedule = append(resp.Schedule, dayPayload(day))
	}
	for _, t := range r.Tasks {
		resp.Tasks = append(resp.Tasks, TaskFromDomain(t))
	}
	return resp
}

// ResponseFromRun converts a persisted run to its wire form.
func ResponseFromRun(run *domain.ScheduleRun) *ScheduleResponse {
	resp := &ScheduleResponse{
		RunID:       run.ID,
		StartDate:   run.StartDate.Format("2006-01-02"),
		GeneratedAt: run.GeneratedAt.Format("2006-01-02 15:04"),
		Schedule:    make([]DayPayload, 0, len(run.Days)),
		Warnings:    run.Warnings,
	}
	for _, day := range run.Days {
		resp.Schedule = append(resp.Schedule, dayPayload(day))
	}
	return resp
}

func dayPayload(day domain.DaySchedule) DayPayload {
	p := DayPayload{
		DayNumber:      day.DayNumber,
		Date:           day.Date.Format("2006-01-02"),
		ScheduledTasks: make([]SessionPayload, 0, len(day.Sessions)),
		Warnings:       day.Warnings,
	}
	for _, s := range day.Sessions {
		p.ScheduledTasks = append(p.ScheduledTasks, SessionPayload{
			TaskID:        s.TaskID,
			Name:          s.TaskName,
			StartTime:     s.StartTime(),
			EndTime:       s.EndTime(),
			DurationHours: s.DurationHours,
			Priority:      int(s.Priority),
			Progress:      s.Progress,
		})
	}
	return p
}
