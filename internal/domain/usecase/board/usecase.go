package board

import (
	"context"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
	"taskboard/internal/domain/usecase/taskform"
)

type UseCase interface {
	// Refresh re-fetches the whole task list and resets the view to all tasks
	Refresh(ctx context.Context) error

	// All returns the canonical list in backend order
	All() []entity.Task

	// Visible returns the list after the last search or sort
	Visible() []entity.Task

	// Find looks a task up by id in the canonical list
	Find(id string) (entity.Task, bool)

	// Search shows the tasks whose title contains term, case-insensitively
	Search(term string)

	// Sort reorders the canonical list by criteria; an empty criteria resets the order
	Sort(criteria model.SortCriteria, value string)

	// ViewState returns the search or sort currently applied
	ViewState() model.ViewPreferences

	// ApplyViewState restores a previously saved search or sort
	ApplyViewState(prefs model.ViewPreferences)

	// Add validates the form, creates the task and refreshes the list
	Add(ctx context.Context, form taskform.Form) (entity.Task, error)

	// Edit validates the form, replaces the task and refreshes the list
	Edit(ctx context.Context, id string, form taskform.Form) error

	// Delete removes the task and refreshes the list
	Delete(ctx context.Context, id string) error
}
