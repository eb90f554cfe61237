package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/usecase/taskform"
	"taskboard/pkg/msg"
)

// FormMode tells whether the form creates or replaces a task.
type FormMode int

const (
	FormAdd FormMode = iota
	FormEdit
)

// formField is a focus position inside the form.
type formField int

const (
	fieldTitle formField = iota
	fieldDueDate
	fieldDescription
	fieldNotes
	fieldAssignee
	fieldPriority
	fieldStatus
	fieldCount
)

// text inputs occupy the first positions, selectors the last two.
const textFieldCount = int(fieldPriority)

var fieldNames = [fieldCount]string{
	fieldTitle:       taskform.FieldTitle,
	fieldDueDate:     taskform.FieldDueDate,
	fieldDescription: taskform.FieldDescription,
	fieldNotes:       taskform.FieldNotes,
	fieldAssignee:    taskform.FieldAssignee,
	fieldPriority:    taskform.FieldPriorityLevel,
	fieldStatus:      taskform.FieldStatus,
}

var fieldLabels = [fieldCount]string{
	fieldTitle:       "form.label.title",
	fieldDueDate:     "form.label.due-date",
	fieldDescription: "form.label.description",
	fieldNotes:       "form.label.notes",
	fieldAssignee:    "form.label.assignee",
	fieldPriority:    "form.label.priority",
	fieldStatus:      "form.label.status",
}

// TaskForm is the add/edit overlay.
type TaskForm struct {
	Mode   FormMode
	TaskID string

	inputs   []textinput.Model
	priority entity.PriorityLevel
	status   entity.Status
	focus    formField
	errors   taskform.ValidationErrors
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newTaskForm(mode FormMode, taskID string, values taskform.Form) *TaskForm {
	f := &TaskForm{
		Mode:   mode,
		TaskID: taskID,
		inputs: make([]textinput.Model, textFieldCount),
	}
	for i := 0; i < textFieldCount; i++ {
		f.inputs[i] = newTextInput(msg.GetMessage(fieldLabels[i]), 500)
	}
	f.inputs[fieldDueDate].Placeholder = "YYYY-MM-DD"
	f.setValues(values)
	f.focusField(fieldTitle)
	return f
}

// NewAddTaskForm opens an empty form with the add defaults.
func NewAddTaskForm() *TaskForm {
	return newTaskForm(FormAdd, "", taskform.NewAddForm())
}

// NewEditTaskForm opens a form prefilled from task.
func NewEditTaskForm(task entity.Task) *TaskForm {
	return newTaskForm(FormEdit, task.ID, taskform.NewEditForm(task))
}

func (f *TaskForm) setValues(values taskform.Form) {
	f.inputs[fieldTitle].SetValue(values.Title)
	f.inputs[fieldDueDate].SetValue(values.DueDate)
	f.inputs[fieldDescription].SetValue(values.Description)
	f.inputs[fieldNotes].SetValue(values.Notes)
	f.inputs[fieldAssignee].SetValue(values.Assignee)
	f.priority = values.PriorityLevel
	f.status = values.Status
}

// Values returns the current field values.
func (f *TaskForm) Values() taskform.Form {
	return taskform.Form{
		Title:         f.inputs[fieldTitle].Value(),
		DueDate:       f.inputs[fieldDueDate].Value(),
		Description:   f.inputs[fieldDescription].Value(),
		Notes:         f.inputs[fieldNotes].Value(),
		Assignee:      f.inputs[fieldAssignee].Value(),
		PriorityLevel: f.priority,
		Status:        f.status,
	}
}

// Errors returns the inline field errors currently shown.
func (f *TaskForm) Errors() taskform.ValidationErrors {
	return f.errors
}

func (f *TaskForm) SetErrors(errs taskform.ValidationErrors) {
	f.errors = errs
}

func (f *TaskForm) ClearErrors() {
	f.errors = nil
}

// Reset restores the add defaults and clears errors.
func (f *TaskForm) Reset() {
	values := f.Values()
	values.Reset()
	f.setValues(values)
	f.errors = nil
	f.focusField(fieldTitle)
}

func (f *TaskForm) focusField(field formField) {
	f.focus = field
	for i := range f.inputs {
		if formField(i) == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// Update handles navigation and editing keys. Submit and close are handled by the App.
func (f *TaskForm) Update(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "tab", "down":
		f.focusField((f.focus + 1) % fieldCount)
		return nil
	case "shift+tab", "up":
		f.focusField((f.focus + fieldCount - 1) % fieldCount)
		return nil
	case "left", "right":
		step := 1
		if key.String() == "left" {
			step = -1
		}
		switch f.focus {
		case fieldPriority:
			f.priority = cycle(entity.PriorityLevels, f.priority, step)
			return nil
		case fieldStatus:
			f.status = cycle(entity.Statuses, f.status, step)
			return nil
		}
	}

	if int(f.focus) >= textFieldCount {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(key)
	return cmd
}

// cycle moves step positions from current inside values, wrapping around.
// A value outside the list starts from the first entry.
func cycle[T comparable](values []T, current T, step int) T {
	i := slices.Index(values, current)
	if i < 0 {
		return values[0]
	}
	return values[(i+step+len(values))%len(values)]
}

func (f *TaskForm) View() string {
	var b strings.Builder

	title := msg.GetMessage("form.new-title")
	if f.Mode == FormEdit {
		title = msg.GetMessage("form.edit-title")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i := formField(0); i < fieldCount; i++ {
		label := msg.GetMessage(fieldLabels[i])
		if i == f.focus {
			label = focusedStyle.Render("> " + label)
		} else {
			label = labelStyle.Render("  " + label)
		}
		b.WriteString(label)
		b.WriteString("\n  ")

		switch i {
		case fieldPriority:
			b.WriteString(selectorView(f.priority.Label(), i == f.focus))
		case fieldStatus:
			b.WriteString(selectorView(f.status.Label(), i == f.focus))
		default:
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")

		if text, ok := f.errors[fieldNames[i]]; ok {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(text))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(msg.GetMessage("form.hints")))
	return formStyle.Render(b.String())
}

func selectorView(label string, focused bool) string {
	if focused {
		return focusedStyle.Render("‹ " + label + " ›")
	}
	return "  " + label
}
