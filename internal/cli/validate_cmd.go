package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slotplan/internal/cli/formatter"
)

func newValidateCmd(app *App) *cobra.Command {
	var flags scheduleFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the stored planning state without scheduling",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plan.Validate(context.Background(), flags.overrides(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s", formatter.FormatValidation(resp))
			if !resp.Valid {
				return fmt.Errorf("planning state is invalid")
			}
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
