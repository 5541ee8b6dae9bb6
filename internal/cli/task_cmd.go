package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slotplan/internal/cli/formatter"
	"slotplan/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskLogCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

// parsePriority accepts "high", "medium", "low" or the numeric levels 1-3.
func parsePriority(s string) (domain.Priority, error) {
	switch s {
	case "high", "1":
		return domain.PriorityHigh, nil
	case "medium", "2":
		return domain.PriorityMedium, nil
	case "low", "3":
		return domain.PriorityLow, nil
	default:
		return 0, fmt.Errorf("invalid priority %q (expected high, medium or low)", s)
	}
}

// parseTaskID converts a positional ID argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, priority string
	var hours, session float64
	var deadline int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags on a terminal: collect the fields interactively.
			if !cmd.Flags().Changed("name") && app.interactive() {
				var hoursStr, sessionStr, deadlineStr string
				priority = "medium"
				form := taskAddForm(&name, &hoursStr, &sessionStr, &priority, &deadlineStr)
				if err := form.Run(); err != nil {
					return err
				}
				hours, _ = strconv.ParseFloat(hoursStr, 64)
				session, _ = strconv.ParseFloat(sessionStr, 64)
				deadline, _ = strconv.Atoi(deadlineStr)
			}

			if name == "" {
				return fmt.Errorf("--name is required")
			}

			prio, err := parsePriority(priority)
			if err != nil {
				return err
			}

			t := &domain.Task{
				Name:            name,
				TotalHours:      hours,
				HoursPerSession: session,
				Priority:        prio,
				DeadlineDay:     deadline,
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %q (#%d): %s in %s sessions, due day %d\n",
				t.Name, t.ID,
				formatter.FormatHours(t.TotalHours), formatter.FormatHours(t.HoursPerSession),
				t.DeadlineDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Total hours of work")
	cmd.Flags().Float64Var(&session, "session", 0, "Hours per session")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (high|medium|low)")
	cmd.Flags().IntVar(&deadline, "deadline", 0, "Deadline day (1 = first day of the schedule)")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log ID HOURS",
		Short: "Log completed hours on a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[1])
			}

			t, err := app.Tasks.LogHours(context.Background(), id, hours)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %q — now %s\n",
				formatter.FormatHours(hours), t.Name,
				domain.FormatProgress(t.HoursCompleted, t.TotalHours))
			if t.IsComplete() {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %q is complete.\n", t.Name)
			}
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, priority string
	var hours, session float64
	var deadline int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("hours") {
				t.TotalHours = hours
			}
			if cmd.Flags().Changed("session") {
				t.HoursPerSession = session
			}
			if cmd.Flags().Changed("priority") {
				prio, err := parsePriority(priority)
				if err != nil {
					return err
				}
				t.Priority = prio
			}
			if cmd.Flags().Changed("deadline") {
				t.DeadlineDay = deadline
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %q (#%d)\n", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Total hours of work")
	cmd.Flags().Float64Var(&session, "session", 0, "Hours per session")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high|medium|low)")
	cmd.Flags().IntVar(&deadline, "deadline", 0, "Deadline day")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task #%d\n", id)
			return nil
		},
	}
}
