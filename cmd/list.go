package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/reporter"
	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// List command flags
var (
	listStatus   string
	listPriority string
	listCategory string
	listOverdue  bool
)

// listOptions selects which tasks to display. At most one filter may be set.
type listOptions struct {
	Status   string
	Priority string
	Category string
	Overdue  bool
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks in insertion order, optionally filtered by one facet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, listOptions{
				Status:   listStatus,
				Priority: listPriority,
				Category: listCategory,
				Overdue:  listOverdue,
			})
		},
	}

	cmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status")
	cmd.Flags().StringVarP(&listPriority, "priority", "p", "", "filter by priority")
	cmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
	cmd.Flags().BoolVar(&listOverdue, "overdue", false, "show only overdue tasks")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	filters := 0
	for _, set := range []bool{opts.Status != "", opts.Priority != "", opts.Category != "", opts.Overdue} {
		if set {
			filters++
		}
	}
	if filters > 1 {
		return fmt.Errorf("only one of --status, --priority, --category, --overdue may be used")
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	var tasks []*taskstore.Task
	switch {
	case opts.Overdue:
		tasks = store.Overdue()
	case opts.Status != "":
		status, err := taskstore.ParseStatus(opts.Status)
		if err != nil {
			return err
		}
		tasks = store.ListByStatus(status)
	case opts.Priority != "":
		priority, err := taskstore.ParsePriority(opts.Priority)
		if err != nil {
			return err
		}
		tasks = store.ListByPriority(priority)
	case opts.Category != "":
		tasks = store.ListByCategory(opts.Category)
	default:
		tasks = store.List()
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), reporter.FormatTaskList(tasks, time.Now()))

	return nil
}
