package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskboard/internal/application/schedule"
	"taskboard/internal/application/tui"
	"taskboard/pkg/log"
	"taskboard/pkg/msg"
	"taskboard/pkg/resource"
)

func newTUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
	}
}

func runBoard(cmd *cobra.Command, opts *rootOptions) error {
	if err := bootstrap(opts); err != nil {
		return err
	}

	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.Close()

	log.Info(msg.GetMessage("app.start"))

	model := tui.NewApp(app.board, app.preferences, resource.GetDuration("app.backend.timeout"))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	scheduler := schedule.NewRefreshScheduler(resource.GetDuration("app.board.refresh-interval"), func() {
		program.Send(tui.RefreshMsg{})
	})
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()

	_, err = program.Run()
	log.Info(msg.GetMessage("app.stop"))
	return err
}
