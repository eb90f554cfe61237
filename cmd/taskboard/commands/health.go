package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"taskboard/internal/domain/model"
	"taskboard/pkg/msg"
)

func newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the task backend and the preferences store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, opts, func(ctx context.Context, app *application) error {
				response := app.health.CheckHealth(ctx)

				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(response); err != nil {
					return err
				}

				if response.Status != model.StatusUp {
					return errors.New(msg.GetMessage("cli.unhealthy", string(response.Status)))
				}
				return nil
			})
		},
	}
}
