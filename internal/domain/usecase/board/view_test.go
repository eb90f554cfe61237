package board

import (
	"testing"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
)

func task(id, title, due string, priority entity.PriorityLevel, status entity.Status) entity.Task {
	return entity.Task{
		ID:            id,
		Title:         title,
		DueDate:       due,
		Assignee:      entity.Assignee{DisplayName: "Ana"},
		PriorityLevel: priority,
		Status:        status,
	}
}

func ids(tasks []entity.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(t *testing.T, got []entity.Task, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("ids = %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("ids = %v, want %v", g, want)
		}
	}
}

var fixture = []entity.Task{
	task("1", "Buy milk", "2024-05-03", entity.PriorityLow, entity.StatusPending),
	task("2", "Call Bob", "2024-05-01", entity.PriorityHigh, entity.StatusCompleted),
	task("3", "MILKshake recipe", "someday", entity.PriorityMedium, entity.StatusPending),
	task("4", "File taxes", "2024-04-15", entity.PriorityHigh, entity.StatusCanceled),
	task("5", "Plan trip", "2024-05-01", entity.PriorityLow, entity.StatusInProgress),
}

func TestFilterByTitle(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"milk", []string{"1", "3"}},
		{"MiLk", []string{"1", "3"}},
		{"bob", []string{"2"}},
		{"", []string{"1", "2", "3", "4", "5"}},
		{"   ", []string{"1", "2", "3", "4", "5"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		equalIDs(t, FilterByTitle(fixture, tt.term), tt.want...)
	}
}

func TestFilterByTitleMatchesTitleOnly(t *testing.T) {
	tasks := []entity.Task{{ID: "1", Title: "Report", Description: "milk", Notes: "milk"}}
	if got := FilterByTitle(tasks, "milk"); len(got) != 0 {
		t.Fatalf("matched on description/notes: %v", ids(got))
	}
}

func TestFilterByTitleUnicodeCase(t *testing.T) {
	tasks := []entity.Task{{ID: "1", Title: "ÉCOLE"}}
	equalIDs(t, FilterByTitle(tasks, "école"), "1")
}

func TestSortTasksMovesPriorityToFront(t *testing.T) {
	equalIDs(t, SortTasks(fixture, model.SortPriority, "high"), "2", "4", "1", "3", "5")
	equalIDs(t, SortTasks(fixture, model.SortPriority, "low"), "1", "5", "2", "3", "4")
}

func TestSortTasksMovesStatusToFront(t *testing.T) {
	equalIDs(t, SortTasks(fixture, model.SortStatus, "pending"), "1", "3", "2", "4", "5")
	equalIDs(t, SortTasks(fixture, model.SortStatus, "in-progress"), "5", "1", "2", "3", "4")
}

func TestSortTasksNoMatchKeepsOrder(t *testing.T) {
	equalIDs(t, SortTasks(fixture, model.SortStatus, "archived"), "1", "2", "3", "4", "5")
}

func TestSortTasksByDate(t *testing.T) {
	// 2 and 5 share a date and keep canonical order; 3 does not parse and goes last
	equalIDs(t, SortTasks(fixture, model.SortDate, ""), "4", "2", "5", "1", "3")
}

func TestSortTasksResetAndUnknown(t *testing.T) {
	equalIDs(t, SortTasks(fixture, model.SortNone, ""), "1", "2", "3", "4", "5")
	equalIDs(t, SortTasks(fixture, "title", ""), "1", "2", "3", "4", "5")
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	before := ids(fixture)
	_ = SortTasks(fixture, model.SortDate, "")
	_ = SortTasks(fixture, model.SortPriority, "high")
	equalIDs(t, fixture, before...)
}
