package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slotplan/internal/cli/formatter"
	"slotplan/internal/domain"
)

func newSlotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage closed time slots",
	}

	cmd.AddCommand(
		newSlotAddCmd(app),
		newSlotListCmd(app),
		newSlotRemoveCmd(app),
	)

	return cmd
}

// parseClock parses "HH" or "HH:MM" into hour and minute. "24:00" is the
// end-of-day sentinel.
func parseClock(s string) (int, int, error) {
	hourStr, minuteStr, hasMinute := strings.Cut(s, ":")

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH or HH:MM)", s)
	}

	minute := 0
	if hasMinute {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid time %q (expected HH or HH:MM)", s)
		}
	}
	return hour, minute, nil
}

// weekdayIndex maps day names (or 0-6 digits) to the 0=Monday convention.
var weekdayIndex = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

func parseWeekdays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if d, ok := weekdayIndex[part]; ok {
			days = append(days, d)
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %q (expected mon..sun or 0-6, 0 = Monday)", part)
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

func newSlotAddCmd(app *App) *cobra.Command {
	var from, to, weekdays, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a closed time slot",
		Long: `Declare a daily interval as unavailable. By default the slot applies
every day; --weekdays restricts it to given days of the week and
--date pins it to one calendar date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startHour, startMinute, err := parseClock(from)
			if err != nil {
				return err
			}
			endHour, endMinute, err := parseClock(to)
			if err != nil {
				return err
			}

			if weekdays != "" && date != "" {
				return fmt.Errorf("--weekdays and --date are mutually exclusive")
			}

			slot := &domain.ClosedTimeSlot{
				StartHour:   startHour,
				StartMinute: startMinute,
				EndHour:     endHour,
				EndMinute:   endMinute,
				Scope:       domain.ScopeAllDays,
			}
			if weekdays != "" {
				days, err := parseWeekdays(weekdays)
				if err != nil {
					return err
				}
				slot.Scope = domain.ScopeWeekdays
				slot.Weekdays = days
			}
			if date != "" {
				slot.Scope = domain.ScopeSpecificDate
				slot.SpecificDate = date
			}

			if err := app.Slots.Create(context.Background(), slot); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added closed slot #%d: %s-%s\n",
				slot.ID,
				formatter.Clock(slot.StartHour, slot.StartMinute),
				formatter.Clock(slot.EndHour, slot.EndMinute))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start time (HH or HH:MM)")
	cmd.Flags().StringVar(&to, "to", "", "End time (HH or HH:MM, up to 24:00)")
	cmd.Flags().StringVar(&weekdays, "weekdays", "", "Comma-separated weekdays (mon..sun)")
	cmd.Flags().StringVar(&date, "date", "", "Single date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newSlotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List closed time slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Slots.List(context.Background())
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No closed slots yet.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSlotList(slots))
			return nil
		},
	}
}

func newSlotRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a closed time slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid slot ID %q", args[0])
			}
			if err := app.Slots.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed closed slot #%d\n", id)
			return nil
		},
	}
}
