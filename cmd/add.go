package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// Add command flags
var (
	addDescription string
	addPriority    string
	addDue         string
	addCategory    string
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long:  "Create a task with the given title. New tasks start as pending.",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}

	cmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority: low, medium, high or urgent")
	cmd.Flags().StringVarP(&addDue, "due", "D", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&addCategory, "category", "c", "", "category label")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[0])
	if title == "" {
		return fmt.Errorf("task title must not be empty")
	}

	store, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}

	priorityName := addPriority
	if priorityName == "" {
		priorityName = cfg.Defaults.Priority
	}
	priority, err := taskstore.ParsePriority(priorityName)
	if err != nil {
		return err
	}

	var dueDate *taskstore.Date
	if addDue != "" {
		d, err := taskstore.ParseDate(addDue)
		if err != nil {
			return err
		}
		dueDate = &d
	}

	category := addCategory
	if category == "" {
		category = cfg.Defaults.Category
	}

	task, err := store.Add(title, addDescription, priority, dueDate, category)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", task.ID, task.Title)

	return nil
}
