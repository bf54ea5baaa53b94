package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/reporter"
	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// Status transition shorthands. Any status is reachable from any other;
// completed and cancelled tasks can be reopened.

func newDoneCmd() *cobra.Command {
	return newTransitionCmd("done", "Mark a task completed", taskstore.StatusCompleted)
}

func newStartCmd() *cobra.Command {
	return newTransitionCmd("start", "Mark a task in progress", taskstore.StatusInProgress)
}

func newCancelCmd() *cobra.Command {
	return newTransitionCmd("cancel", "Mark a task cancelled", taskstore.StatusCancelled)
}

func newReopenCmd() *cobra.Command {
	return newTransitionCmd("reopen", "Mark a task pending again", taskstore.StatusPending)
}

func newTransitionCmd(use, short string, status taskstore.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, args[0], status)
		},
	}
}

func runTransition(cmd *cobra.Command, arg string, status taskstore.Status) error {
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, err := store.Update(id, taskstore.Patch{Status: &status})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", task.ID, reporter.StatusLabel(task.Status))

	return nil
}
