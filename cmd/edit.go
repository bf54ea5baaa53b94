package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// Edit command flags
var (
	editTitle       string
	editDescription string
	editPriority    string
	editStatus      string
	editDue         string
	editClearDue    bool
	editCategory    string
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of a task",
		Long:  "Apply a partial update to a task. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}

	cmd.Flags().StringVar(&editTitle, "title", "", "new title")
	cmd.Flags().StringVarP(&editDescription, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&editPriority, "priority", "p", "", "new priority: low, medium, high or urgent")
	cmd.Flags().StringVarP(&editStatus, "status", "s", "", "new status: pending, in_progress, completed or cancelled")
	cmd.Flags().StringVarP(&editDue, "due", "D", "", "new due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&editClearDue, "clear-due", false, "remove the due date")
	cmd.Flags().StringVarP(&editCategory, "category", "c", "", "new category")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	patch, err := patchFromFlags(cmd)
	if err != nil {
		return err
	}
	if patch.IsZero() {
		return fmt.Errorf("nothing to change: pass at least one field flag")
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, err := store.Update(id, patch)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", task.ID, task.Title)

	return nil
}

// patchFromFlags builds a Patch from the edit flags that were actually set,
// so an empty flag value is distinguishable from an unset flag.
func patchFromFlags(cmd *cobra.Command) (taskstore.Patch, error) {
	var patch taskstore.Patch

	if cmd.Flags().Changed("title") {
		title := strings.TrimSpace(editTitle)
		if title == "" {
			return patch, fmt.Errorf("task title must not be empty")
		}
		patch.Title = &title
	}

	if cmd.Flags().Changed("description") {
		description := editDescription
		patch.Description = &description
	}

	if cmd.Flags().Changed("priority") {
		priority, err := taskstore.ParsePriority(editPriority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &priority
	}

	if cmd.Flags().Changed("status") {
		status, err := taskstore.ParseStatus(editStatus)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	if cmd.Flags().Changed("due") {
		if editClearDue {
			return patch, fmt.Errorf("--due and --clear-due are mutually exclusive")
		}
		due, err := taskstore.ParseDate(editDue)
		if err != nil {
			return patch, err
		}
		patch.DueDate = &due
	} else if editClearDue {
		patch.ClearDueDate = true
	}

	if cmd.Flags().Changed("category") {
		category := editCategory
		patch.Category = &category
	}

	return patch, nil
}
