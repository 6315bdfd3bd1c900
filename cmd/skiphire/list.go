package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/skiphire/internal/cli"
	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/gateway"
)

// errFetchFailed marks a list run whose fetch ended in a Failed state.
var errFetchFailed = errors.New("fetch failed")

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the skips offered for the configured location",
		RunE:  a.runList,
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("%w: unknown format %q", common.ErrInvalidConfig, format)
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), a.cfg.StorageEnabled())
	defer interrupts.Stop()

	fetcher, cleanup, err := a.newFetcher(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	state := cli.WithSpinner(cmd.ErrOrStderr(), "Fetching skips for "+a.cfg.Location.String(), func() gateway.FetchState {
		return fetcher.Fetch(ctx)
	})

	switch s := state.(type) {
	case gateway.Loaded:
		if format == "json" {
			return cli.RenderOptionsJSON(cmd.OutOrStdout(), s.Options)
		}
		return cli.RenderOptions(cmd.OutOrStdout(), s.Options)
	case gateway.Failed:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(s.Message))
		return fmt.Errorf("%w: %w", errFetchFailed, s.AsError())
	default:
		return fmt.Errorf("%w: unexpected state %T", errFetchFailed, state)
	}
}
