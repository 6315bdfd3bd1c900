package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Veraticus/skiphire/internal/booking"
	"github.com/Veraticus/skiphire/internal/cli"
	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/config"
	"github.com/Veraticus/skiphire/internal/tui"
	"github.com/Veraticus/skiphire/internal/tui/themes"
)

func (a *app) selectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose a skip size interactively",
		Long: `Open the skip selection page for the configured location.

Use the arrow keys to move between skips, enter to select one and
r to fetch the options again.`,
		RunE: a.runSelect,
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	_ = a.v.BindPFlag(config.KeyTheme, cmd.Flags().Lookup("theme"))

	return cmd
}

func (a *app) runSelect(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(themes.Names(), a.cfg.Theme) {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidConfig, a.cfg.Theme)
	}

	// The page owns the terminal; logs only go to a file if one is set.
	if err := a.setupLogging(io.Discard); err != nil {
		return err
	}

	ctx := cmd.Context()
	fetcher, cleanup, err := a.newFetcher(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := tui.Run(
		tui.WithContext(ctx),
		tui.WithFetcher(fetcher),
		tui.WithLocation(a.cfg.Location),
		tui.WithTheme(themes.GetTheme(a.cfg.Theme)),
		tui.WithStepper(a.cfg.ScrollStep, a.cfg.EdgeSlack),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.HasSelected {
		_, err = fmt.Fprintln(out, cli.FormatInfo("No skip selected."))
		return err
	}

	opt := res.Selected
	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Selected %d Yard Skip · %s · %d day hire period",
		opt.Size, booking.FormatPrice(booking.TotalPrice(opt)), opt.HirePeriodDays)))
	return err
}
