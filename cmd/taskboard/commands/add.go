package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/domain/usecase/taskform"
	"taskboard/pkg/msg"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	flags := &taskFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := taskform.NewAddForm()
			flags.apply(cmd, &form)

			// fail before touching the network
			if err := form.ValidateNew(); err != nil {
				return err
			}

			return withApplication(cmd, opts, func(ctx context.Context, app *application) error {
				task, err := app.board.Add(ctx, form)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.GetMessage("cli.added", task.ID))
				return err
			})
		},
	}

	flags.register(cmd, taskform.NewAddForm())
	return cmd
}
