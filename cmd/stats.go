package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/reporter"
	"github.com/kpavlenko/go-todo/internal/stats"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long:  "Display task counts by status and priority, the overdue count and the completion rate.",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	s := stats.Compute(store.List(), time.Now())

	_, _ = fmt.Fprint(cmd.OutOrStdout(), reporter.FormatStatistics(s))

	return nil
}
