// Package tui provides the interactive terminal board.
package tui

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
	"taskboard/internal/domain/usecase/board"
	"taskboard/internal/domain/usecase/preferences"
	"taskboard/internal/domain/usecase/taskform"
	"taskboard/pkg/msg"
)

const defaultTimeout = 10 * time.Second

// App is the root Bubble Tea model.
type App struct {
	board       board.UseCase
	preferences preferences.UseCase
	timeout     time.Duration

	// Snapshot of board.Visible(), taken after every change.
	tasks  []entity.Task
	cursor int

	width  int
	height int

	searchInput textinput.Model
	searching   bool

	form *TaskForm
	// addForm is reused between openings; it is reset on close and after a successful add.
	addForm *TaskForm
	// formSeq identifies the current opening of a form so late save results can be dropped.
	formSeq       int
	confirmDelete *entity.Task

	loading bool
}

// NewApp creates the board model. A zero timeout uses the default.
func NewApp(boardUseCase board.UseCase, preferencesUseCase preferences.UseCase, timeout time.Duration) *App {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	searchInput := textinput.New()
	searchInput.Placeholder = msg.GetMessage("board.search-placeholder")
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 100
	searchInput.Width = 40
	searchInput.Cursor.SetMode(cursor.CursorStatic)

	return &App{
		board:       boardUseCase,
		preferences: preferencesUseCase,
		timeout:     timeout,
		searchInput: searchInput,
		loading:     true,
	}
}

// Message types
type initialLoadMsg struct {
	prefs model.ViewPreferences
	err   error
}
type tasksRefreshedMsg struct{ err error }
type taskSavedMsg struct {
	seq int
	err error
}
type taskDeletedMsg struct{ err error }

// RefreshMsg asks the board to re-fetch while keeping the active search or sort.
// It is sent by the auto refresh scheduler.
type RefreshMsg struct{}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.loadInitialData()
}

func (a *App) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

func (a *App) loadInitialData() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.context()
		defer cancel()

		err := a.board.Refresh(ctx)
		var prefs model.ViewPreferences
		if a.preferences != nil {
			prefs = a.preferences.Load(ctx)
		}
		return initialLoadMsg{prefs: prefs, err: err}
	}
}

// refresh re-fetches the full list; the view is reset to all tasks.
func (a *App) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.context()
		defer cancel()
		return tasksRefreshedMsg{err: a.board.Refresh(ctx)}
	}
}

// backgroundRefresh re-fetches and re-applies the view that was active.
func (a *App) backgroundRefresh() tea.Cmd {
	view := a.board.ViewState()
	return func() tea.Msg {
		ctx, cancel := a.context()
		defer cancel()
		err := a.board.Refresh(ctx)
		if err == nil && !view.IsZero() {
			a.board.ApplyViewState(view)
		}
		return tasksRefreshedMsg{err: err}
	}
}

func (a *App) savePreferences() tea.Cmd {
	if a.preferences == nil {
		return nil
	}
	view := a.board.ViewState()
	return func() tea.Msg {
		ctx, cancel := a.context()
		defer cancel()
		a.preferences.Save(ctx, view)
		return nil
	}
}

// Update implements tea.Model.
func (a *App) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		a.width = message.Width
		a.height = message.Height
		return a, nil

	case initialLoadMsg:
		a.loading = false
		if !message.prefs.IsZero() {
			a.board.ApplyViewState(message.prefs)
		}
		a.syncView()
		return a, nil

	case RefreshMsg:
		if a.form != nil || a.confirmDelete != nil || a.searching {
			// keep the list stable while the user is interacting with it
			return a, nil
		}
		return a, a.backgroundRefresh()

	case tasksRefreshedMsg:
		a.loading = false
		a.syncView()
		return a, nil

	case taskSavedMsg:
		a.loading = false
		if a.form == nil || message.seq != a.formSeq {
			// the form it came from was closed; the list still reflects the save
			a.syncView()
			return a, nil
		}
		var verrs taskform.ValidationErrors
		switch {
		case message.err == nil:
			a.closeForm()
		case errors.As(message.err, &verrs):
			a.form.SetErrors(verrs)
		}
		// other failures were logged by the board; the form stays open
		a.syncView()
		return a, nil

	case taskDeletedMsg:
		a.loading = false
		a.syncView()
		return a, nil
	}

	return a, nil
}

// syncView re-reads the visible list and the active view state from the board.
func (a *App) syncView() {
	a.tasks = a.board.Visible()
	if a.cursor >= len(a.tasks) {
		a.cursor = len(a.tasks) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if !a.searching {
		a.searchInput.SetValue(a.board.ViewState().Search)
	}
}

func (a *App) selectedTask() (entity.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(a.tasks) {
		return entity.Task{}, false
	}
	return a.tasks[a.cursor], true
}

func (a *App) handleKeyMsg(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch {
	case a.form != nil:
		return a.handleFormKeyMsg(key)
	case a.confirmDelete != nil:
		return a.handleDeleteConfirmKeyMsg(key)
	case a.searching:
		return a.handleSearchKeyMsg(key)
	}

	switch key.String() {
	case "q":
		return a, tea.Quit

	case "/":
		a.searching = true
		return a, a.searchInput.Focus()

	case "s":
		return a.handleSortCriteria()

	case "v":
		return a.handleSortValue()

	case "r":
		a.board.Sort(model.SortNone, "")
		a.cursor = 0
		a.syncView()
		return a, a.savePreferences()

	case "a", "n":
		if a.addForm == nil {
			a.addForm = NewAddTaskForm()
		}
		a.openForm(a.addForm)
		return a, nil

	case "e", "enter":
		if task, ok := a.selectedTask(); ok {
			a.openForm(NewEditTaskForm(task))
		}
		return a, nil

	case "d":
		if task, ok := a.selectedTask(); ok {
			a.confirmDelete = &task
		}
		return a, nil

	case "R":
		a.loading = true
		a.cursor = 0
		return a, a.refresh()

	case "down", "j":
		if a.cursor < len(a.tasks)-1 {
			a.cursor++
		}
		return a, nil

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "home", "g":
		a.cursor = 0
		return a, nil

	case "end", "G":
		if len(a.tasks) > 0 {
			a.cursor = len(a.tasks) - 1
		}
		return a, nil
	}

	return a, nil
}

// handleSearchKeyMsg filters live on every keystroke.
func (a *App) handleSearchKeyMsg(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "enter":
		a.searching = false
		a.searchInput.Blur()
		return a, a.savePreferences()
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(key)
	a.board.Search(a.searchInput.Value())
	a.cursor = 0
	a.syncView()
	return a, cmd
}

// handleSortCriteria cycles date -> priority -> status.
func (a *App) handleSortCriteria() (tea.Model, tea.Cmd) {
	current := a.board.ViewState().SortCriteria
	next := model.SortCriterias[0]
	if i := slices.Index(model.SortCriterias, current); i >= 0 {
		next = model.SortCriterias[(i+1)%len(model.SortCriterias)]
	}

	a.board.Sort(next, firstSortValue(next))
	a.cursor = 0
	a.syncView()
	return a, a.savePreferences()
}

// handleSortValue cycles the value moved to the front for priority and status.
func (a *App) handleSortValue() (tea.Model, tea.Cmd) {
	view := a.board.ViewState()
	var value string
	switch view.SortCriteria {
	case model.SortPriority:
		value = string(cycle(entity.PriorityLevels, entity.PriorityLevel(view.SortValue), 1))
	case model.SortStatus:
		value = string(cycle(entity.Statuses, entity.Status(view.SortValue), 1))
	default:
		return a, nil
	}

	a.board.Sort(view.SortCriteria, value)
	a.cursor = 0
	a.syncView()
	return a, a.savePreferences()
}

func firstSortValue(criteria model.SortCriteria) string {
	switch criteria {
	case model.SortPriority:
		return string(entity.PriorityLevels[0])
	case model.SortStatus:
		return string(entity.Statuses[0])
	}
	return ""
}

func (a *App) handleDeleteConfirmKeyMsg(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		id := a.confirmDelete.ID
		a.confirmDelete = nil
		a.loading = true
		return a, func() tea.Msg {
			ctx, cancel := a.context()
			defer cancel()
			return taskDeletedMsg{err: a.board.Delete(ctx, id)}
		}

	case "n", "N", "esc":
		a.confirmDelete = nil
	}
	return a, nil
}

func (a *App) openForm(form *TaskForm) {
	a.formSeq++
	a.form = form
}

// closeForm hides the form. The add form goes back to its defaults.
func (a *App) closeForm() {
	if a.form != nil && a.form.Mode == FormAdd {
		a.form.Reset()
	}
	a.form = nil
}

func (a *App) handleFormKeyMsg(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		a.closeForm()
		return a, nil

	case "ctrl+s":
		return a.submitForm()
	}

	return a, a.form.Update(key)
}

// submitForm validates locally first so inline errors show without a round trip.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	values := a.form.Values()
	validate := values.ValidateNew
	if a.form.Mode == FormEdit {
		validate = values.Validate
	}
	if err := validate(); err != nil {
		var verrs taskform.ValidationErrors
		if errors.As(err, &verrs) {
			a.form.SetErrors(verrs)
		}
		return a, nil
	}
	a.form.ClearErrors()
	a.loading = true
	seq := a.formSeq

	if a.form.Mode == FormEdit {
		id := a.form.TaskID
		return a, func() tea.Msg {
			ctx, cancel := a.context()
			defer cancel()
			return taskSavedMsg{seq: seq, err: a.board.Edit(ctx, id, values)}
		}
	}

	return a, func() tea.Msg {
		ctx, cancel := a.context()
		defer cancel()
		_, err := a.board.Add(ctx, values)
		return taskSavedMsg{seq: seq, err: err}
	}
}
