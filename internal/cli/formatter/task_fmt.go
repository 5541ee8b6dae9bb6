package formatter

import (
	"fmt"
	"strings"

	"slotplan/internal/domain"
)

// FormatTaskList formats stored tasks as an aligned, styled listing.
func FormatTaskList(tasks []*domain.Task) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Tasks (%d)", len(tasks))))
	b.WriteString("\n\n")

	for _, t := range tasks {
		pct := 0.0
		if t.TotalHours > 0 {
			pct = t.HoursCompleted / t.TotalHours
		}

		line := fmt.Sprintf("%s %s  %s  %s  %s",
			Dim(fmt.Sprintf("#%d", t.ID)),
			Bold(t.Name),
			PriorityBadge(t.Priority),
			Dim(fmt.Sprintf("due day %d", t.DeadlineDay)),
			Dim(fmt.Sprintf("%s per session", FormatHours(t.HoursPerSession))),
		)
		b.WriteString(line + "\n")

		progressLine := fmt.Sprintf("   %s  %s",
			RenderProgress(pct, 16),
			Dim(domain.FormatProgress(t.HoursCompleted, t.TotalHours)),
		)
		if t.InProgress {
			progressLine += "  " + StyleGreen.Render("● in progress")
		} else if t.IsComplete() {
			progressLine += "  " + Dim("✔ done")
		}
		b.WriteString(progressLine + "\n")
	}

	return b.String()
}

// FormatSlotList formats stored closed slots as a styled listing.
func FormatSlotList(slots []*domain.ClosedTimeSlot) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Closed slots (%d)", len(slots))))
	b.WriteString("\n\n")

	for _, s := range slots {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Dim(fmt.Sprintf("#%d", s.ID)),
			StyleBlue.Render(fmt.Sprintf("%s-%s", Clock(s.StartHour, s.StartMinute), Clock(s.EndHour, s.EndMinute))),
			scopeLabel(s),
		))
	}

	return b.String()
}

func scopeLabel(s *domain.ClosedTimeSlot) string {
	switch s.Scope {
	case domain.ScopeAllDays:
		return Dim("every day")
	case domain.ScopeWeekdays:
		return StylePurple.Render(WeekdayList(s.Weekdays))
	case domain.ScopeSpecificDate:
		return StylePurple.Render(s.SpecificDate)
	default:
		return Dim(string(s.Scope))
	}
}

// FormatSettings formats the stored scheduler configuration.
func FormatSettings(cfg domain.SchedulerConfig) string {
	var b strings.Builder

	b.WriteString(Header("Settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %d min\n", Dim("buffer between sessions:"), cfg.BufferMinutes))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("max new task starts per day:"), cfg.MaxNewTaskStartsPerDay))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("start date:"), cfg.StartDate))
	if cfg.HorizonDays > 0 {
		b.WriteString(fmt.Sprintf("%s %d days\n", Dim("horizon:"), cfg.HorizonDays))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("horizon:"), "derived from deadlines"))
	}

	return b.String()
}
