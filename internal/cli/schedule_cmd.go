package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"slotplan/internal/cli/formatter"
	"slotplan/internal/contract"
	"slotplan/internal/importer"
)

// scheduleFlags holds the per-run settings overrides shared by the planning
// commands. Only flags the user actually set are passed on.
type scheduleFlags struct {
	buffer    int
	maxStarts int
	start     string
	horizon   int
}

func (f *scheduleFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.buffer, "buffer", 0, "Buffer minutes after each session")
	fs.IntVar(&f.maxStarts, "max-starts", 0, "Max new task starts per day")
	fs.StringVar(&f.start, "start", "", `Start date ("now" or YYYY-MM-DD)`)
	fs.IntVar(&f.horizon, "horizon", 0, "Horizon in days (0 = derive from deadlines)")
}

func (f *scheduleFlags) overrides(cmd *cobra.Command) *contract.SettingsPayload {
	var p contract.SettingsPayload
	changed := false

	if cmd.Flags().Changed("buffer") {
		p.BufferMinutes = &f.buffer
		changed = true
	}
	if cmd.Flags().Changed("max-starts") {
		p.MaxTasksPerDay = &f.maxStarts
		changed = true
	}
	if cmd.Flags().Changed("start") {
		p.StartDate = &f.start
		changed = true
	}
	if cmd.Flags().Changed("horizon") {
		p.HorizonDays = &f.horizon
		changed = true
	}

	if !changed {
		return nil
	}
	return &p
}

// printSchedule renders a response as JSON or styled text.
func printSchedule(cmd *cobra.Command, resp *contract.ScheduleResponse, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s", formatter.FormatSchedule(resp))
	return nil
}

func newScheduleCmd(app *App) *cobra.Command {
	var flags scheduleFlags
	var asJSON, dryRun, interactive bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate a schedule from the stored tasks and closed slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plan.Generate(context.Background(), flags.overrides(cmd), !dryRun)
			if err != nil {
				return err
			}

			if interactive && app.interactive() {
				return runScheduleView(resp)
			}
			return printSchedule(cmd, resp, asJSON)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schedule as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not persist the generated run")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Browse the schedule day by day")

	cmd.AddCommand(
		newScheduleLastCmd(app),
		newSchedulePreviewCmd(app),
	)

	return cmd
}

func newScheduleLastCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the most recently persisted schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plan.LastRun(context.Background())
			if err != nil {
				return err
			}
			return printSchedule(cmd, resp, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schedule as JSON")

	return cmd
}

func newSchedulePreviewCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Plan a scenario file without touching stored state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			req := contract.ScheduleRequest{
				Tasks:       schema.Tasks,
				ClosedSlots: schema.ClosedSlots,
				Settings:    schema.Settings,
			}
			resp, err := app.Plan.Preview(context.Background(), req)
			if err != nil {
				return err
			}
			return printSchedule(cmd, resp, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schedule as JSON")

	return cmd
}
