package board

import (
	"slices"
	"strings"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
)

// FilterByTitle keeps tasks whose title contains term, ignoring case.
// A blank term keeps every task.
func FilterByTitle(tasks []entity.Task, term string) []entity.Task {
	if strings.TrimSpace(term) == "" {
		return slices.Clone(tasks)
	}

	needle := strings.ToLower(term)
	filtered := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// MoveToFront places the tasks matching keep before all others.
// Relative order inside both groups is preserved.
func MoveToFront(tasks []entity.Task, keep func(entity.Task) bool) []entity.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b entity.Task) int {
		ka, kb := keep(a), keep(b)
		switch {
		case ka && !kb:
			return -1
		case kb && !ka:
			return 1
		}
		return 0
	})
	return sorted
}

// SortByDueDate orders tasks by ascending due date. Dates that do not parse
// go last; ties keep their original order.
func SortByDueDate(tasks []entity.Task) []entity.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b entity.Task) int {
		ta, oka := a.DueTime()
		tb, okb := b.DueTime()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return 1
		case !okb:
			return -1
		}
		return ta.Compare(tb)
	})
	return sorted
}

// SortTasks applies criteria to tasks. Unknown or empty criteria return the
// tasks unchanged.
func SortTasks(tasks []entity.Task, criteria model.SortCriteria, value string) []entity.Task {
	switch criteria {
	case model.SortPriority:
		return MoveToFront(tasks, func(t entity.Task) bool { return string(t.PriorityLevel) == value })
	case model.SortStatus:
		return MoveToFront(tasks, func(t entity.Task) bool { return string(t.Status) == value })
	case model.SortDate:
		return SortByDueDate(tasks)
	}
	return slices.Clone(tasks)
}
