package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/cli/formatter"
	"github.com/tbielak/cram/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and inspect the study plan",
	}

	cmd.AddCommand(
		newPlanBuildCmd(app),
		newPlanShowCmd(app),
		newPlanReviewCmd(app),
		newPlanExportCmd(app),
	)

	return cmd
}

func courseNames(ctx context.Context, app *App) (map[string]string, error) {
	courses, err := app.Courses.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(courses))
	for _, c := range courses {
		names[c.Code] = c.Name
	}
	return names, nil
}

func newPlanBuildCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Schedule all courses into a day-by-day plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			days, err := app.Plans.Build(ctx, today())
			if err != nil {
				return err
			}
			names, err := courseNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Planned %d days", len(days))))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(days, names))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			days, err := app.Plans.Current(ctx)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				return domain.NoPlanErrorf("no plan found; run 'cram plan build' first")
			}
			names, err := courseNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(days, names))
			return nil
		},
	}
}

func newPlanReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Check the stored plan for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnings, err := app.Plans.Review(context.Background(), today())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReview(warnings))
			return nil
		},
	}
}

func newPlanExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored plan to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Export.Export(context.Background(), format, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK("Exported to "+path))
			return nil
		},
	}

	defaultFormat := app.DefaultExportFormat
	if defaultFormat == "" {
		defaultFormat = "csv"
	}
	cmd.Flags().StringVar(&format, "format", defaultFormat, "Export format: csv or markdown")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default inside the export directory)")

	return cmd
}
