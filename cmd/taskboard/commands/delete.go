package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/pkg/msg"
)

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withApplication(cmd, opts, func(ctx context.Context, app *application) error {
				if err := app.board.Delete(ctx, id); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), msg.GetMessage("cli.deleted", id))
				return err
			})
		},
	}
}
