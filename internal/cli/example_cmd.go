package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exampleScenario is a complete scenario file accepted by "import" and
// "schedule preview".
const exampleScenario = `{
  "tasks": [
    {"name": "write report", "total_hours": 6, "hours_per_session": 2, "priority": 1, "deadline_day": 4},
    {"name": "exam prep", "total_hours": 9, "hours_per_session": 3, "priority": 1, "deadline_day": 7},
    {"name": "code reviews", "total_hours": 4, "hours_per_session": 1, "priority": 3, "deadline_day": 10}
  ],
  "closed_slots": [
    {"start_hour": 0, "end_hour": 7, "applies_to": "all_days"},
    {"start_hour": 9, "end_hour": 17, "applies_to": "weekdays", "weekdays": [0, 1, 2, 3, 4]},
    {"start_hour": 22, "end_hour": 24, "applies_to": "all_days"},
    {"start_hour": 10, "end_hour": 14, "applies_to": "specific_date", "specific_date": "2024-02-17"}
  ],
  "settings": {
    "buffer_minutes": 15,
    "max_tasks_per_day": 2,
    "start_date": "now"
  }
}
`

func newExampleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a sample scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), exampleScenario)
			return nil
		},
	}
}
