// Package cmd implements the todo command-line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kpavlenko/go-todo/internal/config"
	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// Persistent root command flags
var (
	cfgFile  string
	dataFile string
	verbose  bool
)

// NewRootCmd creates the root command for the todo CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Personal task manager with priorities, due dates and categories",
		Long: `todo manages a personal task list persisted to a local JSON file.

Tasks carry a priority (low, medium, high, urgent), a lifecycle status
(pending, in_progress, completed, cancelled), an optional due date and a
category. Running todo without a subcommand lists all tasks.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, listOptions{})
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: todo.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "data file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newCancelCmd())
	rootCmd.AddCommand(newReopenCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

// newLogger builds the command logger, writing to the command's stderr.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// openStore loads configuration and opens the task store at the resolved
// data file path. The --data flag takes precedence over the config file.
func openStore(cmd *cobra.Command) (*taskstore.FileStore, *config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := dataFile
	if path == "" {
		path = cfg.Data.Path
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	store, err := taskstore.NewFileStore(path, newLogger(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open task store: %w", err)
	}

	return store, cfg, nil
}

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %q", arg)
	}
	return id, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
