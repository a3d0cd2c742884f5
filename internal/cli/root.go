// Package cli defines the cram command tree. Commands talk to the service
// layer only; all formatting lives in the formatter subpackage.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses     service.CourseService
	Preferences service.PreferenceService
	Plans       service.PlanService
	Estimates   service.EstimateService
	Ingest      service.IngestService
	State       service.StateService
	Export      service.ExportService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are skipped when it returns false.
	IsInteractive func() bool

	// DefaultExportFormat is the configured export format used when the
	// --format flag is not given; empty means csv.
	DefaultExportFormat string
}

// NewRootCmd creates the top-level "cram" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cram",
		Short:         "Exam study planner",
		Long:          "cram tracks courses, materials and exam dates, and schedules a day-by-day study plan that respects your daily limit and days off.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCourseCmd(app),
		newPrefsCmd(app),
		newPlanCmd(app),
		newEstimateCmd(app),
		newIngestCmd(app),
		newStateCmd(app),
	)

	return root
}
