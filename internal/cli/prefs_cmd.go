package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tbielak/cram/internal/cli/formatter"
	"github.com/tbielak/cram/internal/domain"
	"github.com/tbielak/cram/internal/service"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change study preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsSetCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var dailyMax float64
	var daysOff []string
	var start string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences",
		Long: `Change preferences via flags, or interactively when no flag is given
and stdin is a terminal. Days off take weekday names; the start date takes
free text like "next monday" or "2024-06-01".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			upd := service.PreferenceUpdate{}
			if cmd.Flags().Changed("daily-max") {
				upd.DailyMaxHours = &dailyMax
			}
			if cmd.Flags().Changed("days-off") {
				upd.DaysOff = daysOff
			}
			if cmd.Flags().Changed("start") {
				upd.StartDateText = &start
			}

			if upd.DailyMaxHours == nil && upd.DaysOff == nil && upd.StartDateText == nil {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("no preference flags given; see 'cram prefs set --help'")
				}
				var err error
				upd, err = promptPreferences(app)
				if err != nil {
					return err
				}
			}

			p, err := app.Preferences.Set(context.Background(), upd, today())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}

	cmd.Flags().Float64Var(&dailyMax, "daily-max", domain.DefaultDailyMaxHours, "Maximum study hours per day")
	cmd.Flags().StringSliceVar(&daysOff, "days-off", nil, "Weekday names to keep free (e.g. saturday,sunday)")
	cmd.Flags().StringVar(&start, "start", "", "Plan start date as free text")

	return cmd
}

// promptPreferences collects a full preference update through a terminal form.
func promptPreferences(app *App) (service.PreferenceUpdate, error) {
	current, err := app.Preferences.Get(context.Background())
	if err != nil {
		return service.PreferenceUpdate{}, err
	}

	dailyMax := strconv.FormatFloat(current.DailyMaxHours, 'g', -1, 64)
	// Non-nil so clearing every selection still counts as an update.
	daysOff := append([]string{}, current.DaysOff...)
	start := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily max hours").
				Value(&dailyMax).
				Validate(validatePositiveFloat),
			huh.NewMultiSelect[string]().
				Title("Days off").
				Options(huh.NewOptions(domain.Weekdays...)...).
				Value(&daysOff),
			huh.NewInput().
				Title("Start date (blank for today)").
				Placeholder("next monday").
				Value(&start),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return service.PreferenceUpdate{}, err
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(dailyMax), 64)
	if err != nil {
		return service.PreferenceUpdate{}, fmt.Errorf("invalid daily max %q: %w", dailyMax, err)
	}
	upd := service.PreferenceUpdate{DailyMaxHours: &parsed, DaysOff: daysOff}
	if strings.TrimSpace(start) != "" {
		upd.StartDateText = &start
	}
	return upd, nil
}

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
