package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/cli/formatter"
)

func newIngestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <text>...",
		Short: "Attach study materials from free text",
		Long: `Attach PDF materials mentioned in free text, e.g.
"cram ingest cs 101 slides week1.pdf week2.pdf". Bare file names are looked
up in the working directory, ~/Downloads and ~/Documents.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Ingest.Ingest(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range res.Ingested {
				fmt.Fprintln(out, formatter.OK(fmt.Sprintf("%s ← %s", res.CourseCode, path)))
			}
			for _, ref := range res.Missing {
				fmt.Fprintln(out, formatter.Warn("not found: "+ref))
			}
			return nil
		},
	}
}
