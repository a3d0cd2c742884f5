package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/cli/formatter"
)

func newEstimateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Estimate study hours from material counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Estimates.Estimate(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(res.Courses))
			for _, e := range res.Courses {
				rows = append(rows, []string{
					e.Code,
					strconv.Itoa(e.MaterialCount),
					strconv.FormatFloat(e.Hours, 'g', -1, 64) + "h",
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Code", "Materials", "Hours"}, rows))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("%gh total", res.TotalHours)))
			return nil
		},
	}
}
