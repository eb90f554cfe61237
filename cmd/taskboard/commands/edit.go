package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/domain/usecase/board"
	"taskboard/internal/domain/usecase/taskform"
	"taskboard/pkg/msg"
)

func newEditCommand(opts *rootOptions) *cobra.Command {
	flags := &taskFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace fields of a task",
		Long:  "Edit starts from the task as the backend holds it, applies the given flags and sends the full replacement.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			return withApplication(cmd, opts, func(ctx context.Context, app *application) error {
				if err := app.board.Refresh(ctx); err != nil {
					return err
				}
				current, ok := app.board.Find(id)
				if !ok {
					return fmt.Errorf("%w: %s", board.ErrTaskNotFound, id)
				}

				form := taskform.NewEditForm(current)
				flags.apply(cmd, &form)

				if err := app.board.Edit(ctx, id, form); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), msg.GetMessage("cli.edited", id))
				return err
			})
		},
	}

	flags.register(cmd, taskform.Form{})
	return cmd
}
