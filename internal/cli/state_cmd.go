package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/cli/formatter"
)

func newStateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset everything cram knows",
	}

	cmd.AddCommand(
		newStateShowCmd(app),
		newStateResetCmd(app),
	)

	return cmd
}

func newStateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show courses, preferences and the plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.State.Snapshot(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnapshot(snap.Courses, snap.Preferences, snap.Plan))
			return nil
		},
	}
}

func newStateResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all courses, preferences and the plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to wipe state without --force")
			}
			if _, err := app.State.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK("State reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the safety check")

	return cmd
}
