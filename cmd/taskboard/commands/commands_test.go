package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/gateway/api/apitest"
	"taskboard/internal/domain/model"
	"taskboard/internal/domain/usecase/board"
	"taskboard/pkg/resource"
)

var seeded = []entity.Task{
	{ID: "1", Title: "Buy milk", DueDate: "2024-05-03", Assignee: entity.Assignee{DisplayName: "Ana"}, PriorityLevel: entity.PriorityLow, Status: entity.StatusPending},
	{ID: "2", Title: "Call Bob", DueDate: "2024-05-01", Assignee: entity.Assignee{DisplayName: "Bea"}, PriorityLevel: entity.PriorityHigh, Status: entity.StatusCompleted, Notes: "urgent"},
	{ID: "3", Title: "Milkshake", DueDate: "2024-04-20", Assignee: entity.Assignee{DisplayName: "Cid"}, PriorityLevel: entity.PriorityMedium, Status: entity.StatusPending},
}

// execute runs the root command against backend with a throwaway config.
func execute(t *testing.T, backend *apitest.Backend, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	config := filepath.Join(dir, "application.yml")
	content := "app:\n" +
		"  log:\n" +
		"    file: " + filepath.Join(dir, "taskboard.log") + "\n" +
		"    level: debug\n" +
		"  backend:\n" +
		"    timeout: 5s\n"
	if err := os.WriteFile(config, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", config, "--backend", backend.URL}, args...))

	err := root.Execute()
	return out.String(), err
}

func newBackend(t *testing.T) *apitest.Backend {
	t.Helper()
	backend := apitest.NewBackend(seeded...)
	t.Cleanup(backend.Close)
	return backend
}

func decodeTasks(t *testing.T, out string) []entity.Task {
	t.Helper()
	var tasks []entity.Task
	if err := json.Unmarshal([]byte(out), &tasks); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	return tasks
}

func taskIDs(tasks []entity.Task) string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return strings.Join(ids, ",")
}

func TestListTable(t *testing.T) {
	out, err := execute(t, newBackend(t), "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"TITLE", "Buy milk", "Call Bob", "Milkshake", "High", "Completed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListSearchAndSort(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--search", "MILK"}, "1,3"},
		{[]string{"--sort", "date"}, "3,2,1"},
		{[]string{"--sort", "priority", "--value", "high"}, "2,1,3"},
		{[]string{"--sort", "status", "--value", "completed"}, "2,1,3"},
		{[]string{"--search", "milk", "--sort", "date"}, "3,1"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, newBackend(t), append([]string{"list", "-o", "json"}, tt.args...)...)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if got := taskIDs(decodeTasks(t, out)); got != tt.want {
				t.Fatalf("ids = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestListNoMatch(t *testing.T) {
	out, err := execute(t, newBackend(t), "list", "--search", "zzz")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, `No tasks match "zzz"`) {
		t.Fatalf("output = %s", out)
	}
}

func TestListRejectsBadFlags(t *testing.T) {
	backend := newBackend(t)

	if _, err := execute(t, backend, "list", "--sort", "title"); err == nil || !strings.Contains(err.Error(), "invalid sort criteria title") {
		t.Fatalf("err = %v", err)
	}
	if _, err := execute(t, backend, "list", "-o", "yaml"); err == nil || !strings.Contains(err.Error(), "invalid output yaml") {
		t.Fatalf("err = %v", err)
	}
	for _, criteria := range []string{"priority", "status"} {
		if _, err := execute(t, backend, "list", "--sort", criteria); err == nil || !strings.Contains(err.Error(), "--sort "+criteria+" needs --value") {
			t.Fatalf("--sort %s without value: err = %v", criteria, err)
		}
	}
	if backend.CountCalls(http.MethodGet) != 0 {
		t.Fatal("bad flags should fail before any request")
	}
}

func TestListBackendDown(t *testing.T) {
	backend := newBackend(t)
	backend.FailNext("/tasks", http.StatusBadGateway)

	if _, err := execute(t, backend, "list"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAdd(t *testing.T) {
	backend := newBackend(t)

	out, err := execute(t, backend, "add", "--title", "Write report", "--due", "2024-06-01", "--assignee", "Dee", "-p", "High", "--notes", "quarterly")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	stored := backend.Tasks()
	created := stored[len(stored)-1]
	if !strings.Contains(out, "Added task "+created.ID) {
		t.Fatalf("output = %s", out)
	}
	if created.Title != "Write report" || created.PriorityLevel != entity.PriorityHigh || created.Status != entity.StatusPending || created.Notes != "quarterly" {
		t.Fatalf("created = %+v", created)
	}
}

func TestAddValidation(t *testing.T) {
	backend := newBackend(t)

	_, err := execute(t, backend, "add", "--title", "  ", "--due", "2024-06-01")
	if err == nil || !strings.Contains(err.Error(), "Assignee is required") || !strings.Contains(err.Error(), "Title is required") {
		t.Fatalf("err = %v", err)
	}

	_, err = execute(t, backend, "add", "--title", "x", "--due", "2024-06-01", "--assignee", "y", "--status", "archived")
	if err == nil || !strings.Contains(err.Error(), "Status must be one of") {
		t.Fatalf("err = %v", err)
	}

	if backend.CountCalls(http.MethodPost) != 0 {
		t.Fatal("invalid task was posted")
	}
}

func TestEditKeepsUnchangedFields(t *testing.T) {
	backend := newBackend(t)

	out, err := execute(t, backend, "edit", "2", "--status", "in progress")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !strings.Contains(out, "Edited task 2") {
		t.Fatalf("output = %s", out)
	}

	edited := backend.Tasks()[1]
	want := seeded[1]
	want.Status = entity.StatusInProgress
	if edited != want {
		t.Fatalf("edited = %+v, want %+v", edited, want)
	}
}

func TestEditKeepsUnknownPriorityAndStatus(t *testing.T) {
	legacy := entity.Task{ID: "9", Title: "Legacy", DueDate: "2024-05-01", Assignee: entity.Assignee{DisplayName: "Ana"}, Status: "archived"}
	backend := apitest.NewBackend(legacy)
	t.Cleanup(backend.Close)

	if _, err := execute(t, backend, "edit", "9", "--title", "Renamed"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	want := legacy
	want.Title = "Renamed"
	if got := backend.Tasks()[0]; got != want {
		t.Fatalf("stored = %+v, want %+v", got, want)
	}
	if backend.CountCalls(http.MethodPut) != 1 {
		t.Fatal("expected one PUT")
	}
}

func TestEditUnknownTask(t *testing.T) {
	backend := newBackend(t)

	_, err := execute(t, backend, "edit", "99", "--title", "x")
	if !errors.Is(err, board.ErrTaskNotFound) {
		t.Fatalf("err = %v", err)
	}
	if backend.CountCalls(http.MethodPut) != 0 {
		t.Fatal("unexpected PUT")
	}
}

func TestEditRequiresID(t *testing.T) {
	if _, err := execute(t, newBackend(t), "edit"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestDelete(t *testing.T) {
	backend := newBackend(t)

	out, err := execute(t, backend, "delete", "1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Deleted task 1") || len(backend.Tasks()) != 2 {
		t.Fatalf("output = %s tasks = %d", out, len(backend.Tasks()))
	}

	if _, err := execute(t, backend, "rm", "1"); err == nil {
		t.Fatal("deleting a missing task should fail")
	}
}

func TestHealth(t *testing.T) {
	backend := newBackend(t)

	out, err := execute(t, backend, "health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	var response model.HealthResponse
	if err := json.Unmarshal([]byte(out), &response); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if response.Status != model.StatusUp || response.Preferences.Status != model.StatusDisabled {
		t.Fatalf("response = %+v", response)
	}

	backend.FailNext("/tasks", http.StatusServiceUnavailable)
	if _, err := execute(t, backend, "health"); err == nil || !strings.Contains(err.Error(), "DOWN") {
		t.Fatalf("err = %v", err)
	}
}

func TestBackendFlagOverridesConfig(t *testing.T) {
	backend := newBackend(t)
	if _, err := execute(t, backend, "list"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := resource.GetString("app.backend.url"); got != backend.URL {
		t.Fatalf("app.backend.url = %q", got)
	}
	if got := resource.GetString("app.preferences.profile"); got != "default" {
		t.Fatalf("defaults not applied: profile = %q", got)
	}
}

func TestMissingExplicitConfigFails(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yml"), "list"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error")
	}
}
