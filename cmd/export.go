package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/taskstore"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export tasks to a YAML file",
		Long:  "Write all tasks to a YAML backlog file (default: tasks.yaml).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	path := "tasks.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	count, err := taskstore.ExportToYAML(store, path)
	if err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", count, path)

	return nil
}
