package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slotplan/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change scheduler settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored scheduler settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSettings(cfg))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var buffer, maxStarts, horizon int
	var start string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change scheduler settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("buffer") {
				cfg.BufferMinutes = buffer
			}
			if cmd.Flags().Changed("max-starts") {
				cfg.MaxNewTaskStartsPerDay = maxStarts
			}
			if cmd.Flags().Changed("start") {
				cfg.StartDate = start
			}
			if cmd.Flags().Changed("horizon") {
				cfg.HorizonDays = horizon
			}

			if err := app.Settings.Update(ctx, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSettings(cfg))
			return nil
		},
	}

	cmd.Flags().IntVar(&buffer, "buffer", 0, "Buffer minutes after each session")
	cmd.Flags().IntVar(&maxStarts, "max-starts", 0, "Max new task starts per day")
	cmd.Flags().StringVar(&start, "start", "", `Start date ("now" or YYYY-MM-DD)`)
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Horizon in days (0 = derive from deadlines)")

	return cmd
}
