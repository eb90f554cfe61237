package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
	"taskboard/internal/domain/usecase/board"
	"taskboard/pkg/msg"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var search, sortBy, value, output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: "List tasks. --search keeps titles containing the term, ignoring case. " +
			"--sort date orders by due date; --sort priority|status moves tasks matching --value to the front.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := model.SortCriteria(sortBy)
			if !criteria.IsValid() {
				return errors.New(msg.GetMessage("cli.invalid-sort", sortBy))
			}
			if criteria.NeedsValue() && value == "" {
				return errors.New(msg.GetMessage("cli.missing-sort-value", sortBy))
			}
			if output != outputTable && output != outputJSON {
				return errors.New(msg.GetMessage("cli.invalid-output", output))
			}

			return withApplication(cmd, opts, func(ctx context.Context, app *application) error {
				if err := app.board.Refresh(ctx); err != nil {
					return err
				}

				// the search narrows the list, the sort orders what is left
				tasks := board.SortTasks(board.FilterByTitle(app.board.All(), search), criteria, value)

				if output == outputJSON {
					encoder := json.NewEncoder(cmd.OutOrStdout())
					encoder.SetIndent("", "  ")
					return encoder.Encode(tasks)
				}
				return printTaskTable(cmd, tasks, search)
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "keep tasks whose title contains the term")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort criteria: date, priority or status")
	cmd.Flags().StringVar(&value, "value", "", "priority or status moved to the front")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func printTaskTable(cmd *cobra.Command, tasks []entity.Task, search string) error {
	if len(tasks) == 0 {
		if search != "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), msg.GetMessage("board.empty-search", search))
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), msg.GetMessage("board.empty"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "DUE", "ASSIGNEE", "PRIORITY", "STATUS")
	for _, task := range tasks {
		t.Row(task.ID, task.Title, task.DueDate, task.Assignee.DisplayName, task.PriorityLevel.Label(), task.Status.Label())
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
