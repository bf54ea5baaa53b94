package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/reporter"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, err := store.Get(id)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), reporter.FormatTask(task, time.Now()))

	return nil
}
