package taskform

import (
	"errors"
	"maps"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"taskboard/internal/domain/entity"
	"taskboard/pkg/msg"
)

// Field names used as ValidationErrors keys.
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldDueDate       = "dueDate"
	FieldAssignee      = "assignee"
	FieldPriorityLevel = "priorityLevel"
	FieldStatus        = "status"
	FieldNotes         = "notes"
)

// messageKeys maps a field to its catalog entry in pkg/msg.
var messageKeys = map[string]string{
	FieldTitle:         "form.error.title",
	FieldDueDate:       "form.error.due-date",
	FieldAssignee:      "form.error.assignee",
	FieldPriorityLevel: "form.error.priority",
	FieldStatus:        "form.error.status",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return entity.PriorityLevel(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		return entity.Status(fl.Field().String()).IsValid()
	})
	return v
}

// Form holds the values of the add and edit task forms.
type Form struct {
	Title         string               `form:"title" validate:"notblank"`
	Description   string               `form:"description"`
	DueDate       string               `form:"dueDate" validate:"notblank"`
	Assignee      string               `form:"assignee" validate:"notblank"`
	PriorityLevel entity.PriorityLevel `form:"priorityLevel"`
	Status        entity.Status        `form:"status"`
	Notes         string               `form:"notes"`
}

// NewAddForm returns an empty form with the add defaults.
func NewAddForm() Form {
	return Form{
		PriorityLevel: entity.PriorityLow,
		Status:        entity.StatusPending,
	}
}

// NewEditForm returns a form prefilled from task.
func NewEditForm(task entity.Task) Form {
	return Form{
		Title:         task.Title,
		Description:   task.Description,
		DueDate:       task.DueDate,
		Assignee:      task.Assignee.DisplayName,
		PriorityLevel: task.PriorityLevel,
		Status:        task.Status,
		Notes:         task.Notes,
	}
}

// Reset restores the add defaults.
func (f *Form) Reset() {
	*f = NewAddForm()
}

// ValidationErrors maps a field name to a user-facing message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, e[field])
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e ValidationErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Validate checks presence of title, due date and assignee: a value that is
// blank after trimming fails, there are no format checks. Priority and status
// are sent as they are so tasks holding other values stay editable.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		result[fe.Field()] = msg.GetMessage(messageKeys[fe.Field()])
	}
	return result
}

// ValidateNew runs Validate and also requires a known priority and status,
// since a new task takes them from the add defaults or the selectors.
func (f Form) ValidateNew() error {
	result := ValidationErrors{}
	if err := f.Validate(); err != nil {
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		maps.Copy(result, verrs)
	}

	if validate.Var(string(f.PriorityLevel), "priority") != nil {
		result[FieldPriorityLevel] = msg.GetMessage(messageKeys[FieldPriorityLevel])
	}
	if validate.Var(string(f.Status), "taskstatus") != nil {
		result[FieldStatus] = msg.GetMessage(messageKeys[FieldStatus])
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// ToTask builds the full replacement record for id.
func (f Form) ToTask(id string) entity.Task {
	return entity.Task{
		ID:            id,
		Title:         f.Title,
		Description:   f.Description,
		DueDate:       f.DueDate,
		Assignee:      entity.Assignee{DisplayName: f.Assignee},
		Notes:         f.Notes,
		PriorityLevel: f.PriorityLevel,
		Status:        f.Status,
	}
}

// IDGenerator mints ids for new tasks.
type IDGenerator func() string

// UUIDGenerator mints random v4 UUIDs.
func UUIDGenerator() string {
	return uuid.NewString()
}

// ToNewTask builds a task with a freshly minted id.
func (f Form) ToNewTask(newID IDGenerator) entity.Task {
	if newID == nil {
		newID = UUIDGenerator
	}
	return f.ToTask(newID())
}
