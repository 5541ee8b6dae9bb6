package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slotplan/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a scenario from a JSON file",
		Long: `Load tasks, closed slots and optional settings from a JSON scenario
file. The whole import is one transaction: a rejected file leaves the
store untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportScenario(context.Background(), args[0], replace)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks, %d closed slots\n",
				result.TaskCount, result.SlotCount)
			if result.SettingsApplied {
				fmt.Fprintln(cmd.OutOrStdout(), "Applied scenario settings.")
			}
			if replace {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Previous tasks and slots were replaced."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Clear existing tasks and slots first")

	return cmd
}
