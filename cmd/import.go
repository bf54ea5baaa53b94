package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/taskstore"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long:  "Add tasks from a YAML backlog file. Imported tasks get fresh IDs; invalid entries are skipped and reported.",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	result, err := taskstore.ImportFromYAML(store, path)
	if err != nil {
		return fmt.Errorf("failed to import tasks: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks from %s\n", result.Imported, path)
	for _, ie := range result.Errors {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped %q: %s\n", ie.Title, ie.Reason)
	}

	return nil
}
