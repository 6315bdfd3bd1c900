package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/skiphire/internal/cli"
	"github.com/Veraticus/skiphire/internal/storage"
)

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent attempts to fetch skip options",
		RunE:  a.runHistory,
	}

	cmd.Flags().Int("limit", storage.DefaultHistoryLimit, "number of attempts to show")

	return cmd
}

func (a *app) runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	ctx := cmd.Context()
	fetchLog, err := a.openFetchLog(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = fetchLog.Close() }()

	records, err := fetchLog.RecentFetches(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load fetch history: %w", err)
	}
	return cli.RenderFetchHistory(cmd.OutOrStdout(), records)
}
