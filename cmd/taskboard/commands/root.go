// Package commands holds the taskboard command line.
package commands

import (
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	backendURL string
}

// NewRootCmd creates the root command. Without a subcommand it opens the board.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Terminal board for a task backend",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "properties file path (default from PROPERTIES_FILE_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.backendURL, "backend", "", "task backend base URL, overrides app.backend.url")

	rootCmd.AddCommand(
		newTUICommand(opts),
		newListCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newHealthCommand(opts),
	)

	return rootCmd
}
