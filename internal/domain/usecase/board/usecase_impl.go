package board

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/gateway/api"
	"taskboard/internal/domain/model"
	"taskboard/internal/domain/usecase/taskform"
	"taskboard/pkg/log"
	"taskboard/pkg/msg"
)

// ErrTaskNotFound is returned when an id is not in the canonical list.
var ErrTaskNotFound = errors.New("task not found")

type boardUseCase struct {
	apiGateway api.TaskGateway
	newID      taskform.IDGenerator

	mu      sync.RWMutex
	tasks   []entity.Task
	visible []entity.Task
	view    model.ViewPreferences
}

func NewBoardUseCase(apiGateway api.TaskGateway, newID taskform.IDGenerator) UseCase {
	if newID == nil {
		newID = taskform.UUIDGenerator
	}
	return &boardUseCase{
		apiGateway: apiGateway,
		newID:      newID,
	}
}

// Refresh re-fetches the whole task list. On failure the previous list stays.
func (uc *boardUseCase) Refresh(ctx context.Context) error {
	tasks, err := uc.apiGateway.FindAll(ctx)
	if err != nil {
		log.Error(msg.GetMessage("board.fetch-failed"), zap.Error(err))
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}

	uc.mu.Lock()
	uc.tasks = tasks
	uc.visible = slices.Clone(tasks)
	uc.view = model.ViewPreferences{}
	uc.mu.Unlock()

	log.Debug(msg.GetMessage("board.fetched", len(tasks)))
	return nil
}

func (uc *boardUseCase) All() []entity.Task {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return slices.Clone(uc.tasks)
}

func (uc *boardUseCase) Visible() []entity.Task {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return slices.Clone(uc.visible)
}

func (uc *boardUseCase) Find(id string) (entity.Task, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, task := range uc.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return entity.Task{}, false
}

// Search replaces the visible list; any active sort is dropped.
func (uc *boardUseCase) Search(term string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.visible = FilterByTitle(uc.tasks, term)
	uc.view = model.ViewPreferences{Search: term}
}

// Sort replaces the visible list; any active search is dropped.
func (uc *boardUseCase) Sort(criteria model.SortCriteria, value string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.visible = SortTasks(uc.tasks, criteria, value)
	if !criteria.NeedsValue() {
		value = ""
	}
	uc.view = model.ViewPreferences{SortCriteria: criteria, SortValue: value}
}

func (uc *boardUseCase) ViewState() model.ViewPreferences {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.view
}

// ApplyViewState restores a sort if one was saved, otherwise the search.
func (uc *boardUseCase) ApplyViewState(prefs model.ViewPreferences) {
	if prefs.SortCriteria != model.SortNone && prefs.SortCriteria.IsValid() {
		uc.Sort(prefs.SortCriteria, prefs.SortValue)
		return
	}
	uc.Search(prefs.Search)
}

func (uc *boardUseCase) Add(ctx context.Context, form taskform.Form) (entity.Task, error) {
	if err := form.ValidateNew(); err != nil {
		return entity.Task{}, err
	}

	task := form.ToNewTask(uc.newID)
	if err := uc.apiGateway.Create(ctx, task); err != nil {
		log.Error(msg.GetMessage("board.add-failed"), zap.String("task_id", task.ID), zap.Error(err))
		return entity.Task{}, err
	}
	log.Info(msg.GetMessage("board.added", task.ID), zap.String("task_id", task.ID))

	uc.refreshAfterMutation(ctx)
	return task, nil
}

func (uc *boardUseCase) Edit(ctx context.Context, id string, form taskform.Form) error {
	if err := form.Validate(); err != nil {
		return err
	}

	if err := uc.apiGateway.Update(ctx, id, form.ToTask(id)); err != nil {
		log.Error(msg.GetMessage("board.edit-failed", id), zap.String("task_id", id), zap.Error(err))
		return err
	}
	log.Info(msg.GetMessage("board.edited", id), zap.String("task_id", id))

	uc.refreshAfterMutation(ctx)
	return nil
}

func (uc *boardUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.apiGateway.Delete(ctx, id); err != nil {
		log.Error(msg.GetMessage("board.delete-failed", id), zap.String("task_id", id), zap.Error(err))
		return err
	}
	log.Info(msg.GetMessage("board.deleted", id), zap.String("task_id", id))

	uc.refreshAfterMutation(ctx)
	return nil
}

// refreshAfterMutation re-fetches the list. A failed re-fetch does not undo
// the mutation; Refresh already logged it.
func (uc *boardUseCase) refreshAfterMutation(ctx context.Context) {
	_ = uc.Refresh(ctx)
}
