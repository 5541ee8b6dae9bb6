package cli

import (
	"github.com/spf13/cobra"

	"slotplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Slots    service.SlotService
	Settings service.SettingsService
	Plan     service.PlanService
	Imports  service.ImportService

	// IsInteractive reports whether stdin is an interactive terminal.
	// Left nil in non-interactive contexts (tests, pipes).
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "slotplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "slotplan",
		Short: "Availability-aware task scheduler",
		Long: `slotplan spreads hour-denominated tasks across the free time left
over by your declared closed slots, respecting deadlines, priorities
and a daily cap on newly started tasks.`,
	}

	root.AddCommand(
		newTaskCmd(app),
		newSlotCmd(app),
		newSettingsCmd(app),
		newScheduleCmd(app),
		newValidateCmd(app),
		newImportCmd(app),
		newExampleCmd(app),
	)

	return root
}
