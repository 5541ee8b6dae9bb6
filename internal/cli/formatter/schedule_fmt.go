package formatter

import (
	"fmt"
	"strings"
	"time"

	"slotplan/internal/contract"
	"slotplan/internal/domain"
)

// FormatSchedule formats a full schedule response into a styled CLI string.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	var b strings.Builder

	headerText := fmt.Sprintf("Schedule from %s", resp.StartDate)
	b.WriteString(Header(headerText))
	b.WriteString("\n\n")

	if resp.RunID != "" {
		b.WriteString(Dim(fmt.Sprintf("Run %s", resp.RunID)))
		if resp.GeneratedAt != "" {
			b.WriteString(Dim(fmt.Sprintf(" — generated %s", resp.GeneratedAt)))
		}
		b.WriteString("\n\n")
	}

	if len(resp.Schedule) == 0 {
		b.WriteString(Dim("Nothing to schedule."))
		b.WriteString("\n")
	}

	for i, day := range resp.Schedule {
		b.WriteString(FormatDay(day))
		if i < len(resp.Schedule)-1 {
			b.WriteString("\n")
		}
	}

	if len(resp.Tasks) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Projected progress"))
		b.WriteString("\n\n")
		for _, t := range resp.Tasks {
			pct := 0.0
			if t.TotalHours > 0 {
				pct = t.HoursCompleted / t.TotalHours
			}
			b.WriteString(fmt.Sprintf("%s  %s %s\n",
				RenderProgress(pct, 16),
				StyleFg.Render(t.Name),
				Dim(domain.FormatProgress(t.HoursCompleted, t.TotalHours)),
			))
		}
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("WARNING: %s", w)) + "\n")
		}
	}

	return b.String()
}

// FormatDay formats a single day block with its sessions and warnings.
func FormatDay(day contract.DayPayload) string {
	var b strings.Builder

	title := fmt.Sprintf("Day %d — %s", day.DayNumber, dayLabel(day.Date))
	b.WriteString(Bold(title) + "\n")

	if len(day.ScheduledTasks) == 0 {
		b.WriteString(fmt.Sprintf("  %s\n", Dim("free")))
	}
	for _, s := range day.ScheduledTasks {
		b.WriteString(fmt.Sprintf("  %s  %s %s  %s  %s\n",
			StyleBlue.Render(fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)),
			StyleFg.Render(s.Name),
			Dim(fmt.Sprintf("(%s)", FormatHours(s.DurationHours))),
			PriorityBadge(domain.Priority(s.Priority)),
			Dim(s.Progress),
		))
	}

	for _, w := range day.Warnings {
		b.WriteString(fmt.Sprintf("  %s\n", StyleYellow.Render(fmt.Sprintf("WARNING: %s", w))))
	}

	return b.String()
}

// dayLabel renders "Thu 2024-02-15"; the raw date is passed through when it
// does not parse.
func dayLabel(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", d.Weekday().String()[:3], date)
}

// FormatValidation formats a pre-flight validation response.
func FormatValidation(resp *contract.ValidateResponse) string {
	var b strings.Builder

	if resp.Valid {
		b.WriteString(StyleGreen.Render("● VALID") + "\n")
	} else {
		b.WriteString(StyleRed.Render("● INVALID") + "\n")
	}

	for _, e := range resp.Errors {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  ERROR: %s", e)) + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}

	if resp.Valid && len(resp.Warnings) == 0 {
		b.WriteString(Dim("  All tasks fit their deadlines.") + "\n")
	}

	return b.String()
}
