package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

// PriorityLevel is the urgency of a task.
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// PriorityLevels lists the priority levels in selector order.
var PriorityLevels = []PriorityLevel{PriorityLow, PriorityMedium, PriorityHigh}

func (p PriorityLevel) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label returns the display name shown in selectors.
func (p PriorityLevel) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

// Statuses lists the statuses in selector order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCanceled}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Label returns the display name shown in selectors.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCanceled:
		return "Canceled"
	}
	return string(s)
}

// ParsePriorityLevel accepts the wire value or the label, case-insensitively.
func ParsePriorityLevel(value string) (PriorityLevel, bool) {
	for _, p := range PriorityLevels {
		if strings.EqualFold(value, string(p)) || strings.EqualFold(value, p.Label()) {
			return p, true
		}
	}
	return "", false
}

// ParseStatus accepts the wire value or the label, case-insensitively.
func ParseStatus(value string) (Status, bool) {
	for _, s := range Statuses {
		if strings.EqualFold(value, string(s)) || strings.EqualFold(value, s.Label()) {
			return s, true
		}
	}
	return "", false
}

type Assignee struct {
	UserID      string `json:"userId,omitempty"`
	DisplayName string `json:"displayName"`
}

// Task is the record exchanged with the task backend.
type Task struct {
	ID            string        `json:"id,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	DueDate       string        `json:"dueDate"`
	Assignee      Assignee      `json:"assignee"`
	Notes         string        `json:"notes"`
	PriorityLevel PriorityLevel `json:"priorityLevel"`
	Status        Status        `json:"status"`
}

var dueDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// DueTime parses DueDate. ok is false when the value matches no known layout.
func (t Task) DueTime() (time.Time, bool) {
	value := strings.TrimSpace(t.DueDate)
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Initial is the first character of the assignee's display name, used as the avatar.
func (t Task) Initial() string {
	r, size := utf8.DecodeRuneInString(t.Assignee.DisplayName)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
