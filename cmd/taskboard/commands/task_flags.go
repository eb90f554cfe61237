package commands

import (
	"github.com/spf13/cobra"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/usecase/taskform"
)

// taskFlags are the field flags shared by add and edit.
type taskFlags struct {
	title       string
	description string
	due         string
	assignee    string
	notes       string
	priority    string
	status      string
}

func (f *taskFlags) register(cmd *cobra.Command, defaults taskform.Form) {
	cmd.Flags().StringVarP(&f.title, "title", "t", defaults.Title, "task title")
	cmd.Flags().StringVar(&f.description, "description", defaults.Description, "task description")
	cmd.Flags().StringVar(&f.due, "due", defaults.DueDate, "due date, e.g. 2024-05-01")
	cmd.Flags().StringVar(&f.assignee, "assignee", defaults.Assignee, "assignee display name")
	cmd.Flags().StringVar(&f.notes, "notes", defaults.Notes, "free-form notes")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", string(defaults.PriorityLevel), "low, medium or high")
	cmd.Flags().StringVar(&f.status, "status", string(defaults.Status), "pending, in-progress, completed or canceled")
}

// apply copies the flags the user set onto form. Priority and status accept
// labels as well; unknown values are kept so validation reports them.
func (f *taskFlags) apply(cmd *cobra.Command, form *taskform.Form) {
	changed := cmd.Flags().Changed

	if changed("title") {
		form.Title = f.title
	}
	if changed("description") {
		form.Description = f.description
	}
	if changed("due") {
		form.DueDate = f.due
	}
	if changed("assignee") {
		form.Assignee = f.assignee
	}
	if changed("notes") {
		form.Notes = f.notes
	}
	if changed("priority") {
		form.PriorityLevel = entity.PriorityLevel(f.priority)
		if p, ok := entity.ParsePriorityLevel(f.priority); ok {
			form.PriorityLevel = p
		}
	}
	if changed("status") {
		form.Status = entity.Status(f.status)
		if s, ok := entity.ParseStatus(f.status); ok {
			form.Status = s
		}
	}
}
