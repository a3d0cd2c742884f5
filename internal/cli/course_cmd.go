package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/cli/formatter"
	"github.com/tbielak/cram/internal/dates"
)

func today() time.Time {
	return dates.Midnight(time.Now().UTC())
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseExamCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Register a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Courses.Add(context.Background(), args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK("Added "+c.Code))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course display name")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(courses))
			return nil
		},
	}
}

func newCourseExamCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exam <text>...",
		Short: "Set exam dates from free text",
		Long: `Set exam dates from a sentence like "cs 101 exam is next friday" or
"all exams are on 2024-06-12". Courses mentioned in the text get the date;
with no course mentioned it applies to every known course.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Courses.SetExamDates(context.Background(), strings.Join(args, " "), today())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf(
				"Exam on %s for %s",
				res.Date.Format("2006-01-02"),
				strings.Join(res.Courses, ", "))))
			return nil
		},
	}
}
