package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/gateway/api"
	"taskboard/internal/domain/gateway/api/apitest"
	"taskboard/internal/domain/model"
	taskhttp "taskboard/pkg/http"
)

func seedTask(id, title string) entity.Task {
	return entity.Task{
		ID:            id,
		Title:         title,
		DueDate:       "2024-05-01",
		Assignee:      entity.Assignee{DisplayName: "Ana"},
		PriorityLevel: entity.PriorityLow,
		Status:        entity.StatusPending,
	}
}

func newGateway(t *testing.T, tasks ...entity.Task) (api.TaskGateway, *apitest.Backend) {
	t.Helper()
	backend := apitest.NewBackend(tasks...)
	t.Cleanup(backend.Close)
	return api.NewTaskGateway(backend.URL, taskhttp.ClientOptions{}), backend
}

func TestFindAll(t *testing.T) {
	gateway, _ := newGateway(t, seedTask("1", "Buy milk"), seedTask("2", "Call Bob"))

	tasks, err := gateway.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "Buy milk" || tasks[1].Assignee.DisplayName != "Ana" {
		t.Fatalf("tasks = %+v", tasks)
	}
}

func TestFindAllEmptyBackend(t *testing.T) {
	gateway, _ := newGateway(t)

	tasks, err := gateway.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("tasks = %#v, want empty slice", tasks)
	}
}

func TestFindAllSurfacesBackendMessage(t *testing.T) {
	gateway, backend := newGateway(t)
	backend.FailNext("/tasks", http.StatusInternalServerError)

	_, err := gateway.FindAll(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *taskhttp.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("err = %v, want wrapped StatusError 500", err)
	}
	if !strings.Contains(err.Error(), "Internal Server Error") {
		t.Fatalf("err = %v, want backend message", err)
	}
}

func TestCreatePostsFullTask(t *testing.T) {
	gateway, backend := newGateway(t)
	task := seedTask("new-id", "Write report")
	task.Notes = "quarterly"

	if err := gateway.Create(context.Background(), task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	calls := backend.Calls()
	if len(calls) != 1 || calls[0].Method != http.MethodPost || calls[0].Path != "/addtask" {
		t.Fatalf("calls = %+v", calls)
	}
	if calls[0].Body != task {
		t.Fatalf("body = %+v, want %+v", calls[0].Body, task)
	}
}

func TestCreateRequiresID(t *testing.T) {
	gateway, backend := newGateway(t)
	if err := gateway.Create(context.Background(), entity.Task{Title: "x"}); err == nil {
		t.Fatal("expected error")
	}
	if len(backend.Calls()) != 0 {
		t.Fatal("no request expected")
	}
}

func TestUpdateSendsReplacementWithoutID(t *testing.T) {
	gateway, backend := newGateway(t, seedTask("1", "Buy milk"))
	edited := seedTask("ignored", "Buy oat milk")
	edited.Status = entity.StatusCompleted

	if err := gateway.Update(context.Background(), "1", edited); err != nil {
		t.Fatalf("Update: %v", err)
	}

	calls := backend.Calls()
	if len(calls) != 1 || calls[0].Method != http.MethodPut || calls[0].Path != "/edittask/1" {
		t.Fatalf("calls = %+v", calls)
	}
	if calls[0].Body.ID != "" {
		t.Fatalf("body carried id %q", calls[0].Body.ID)
	}
	stored := backend.Tasks()[0]
	if stored.ID != "1" || stored.Title != "Buy oat milk" || stored.Status != entity.StatusCompleted {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestUpdateEscapesID(t *testing.T) {
	gateway, backend := newGateway(t, seedTask("a b", "Spaces"))

	if err := gateway.Update(context.Background(), "a b", seedTask("", "Renamed")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := backend.Tasks()[0].Title; got != "Renamed" {
		t.Fatalf("title = %q", got)
	}
}

func TestDelete(t *testing.T) {
	gateway, backend := newGateway(t, seedTask("1", "Buy milk"), seedTask("2", "Call Bob"))

	if err := gateway.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	tasks := backend.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "2" {
		t.Fatalf("tasks = %+v", tasks)
	}
}

func TestDeleteUnknownTask(t *testing.T) {
	gateway, _ := newGateway(t)

	err := gateway.Delete(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), "task not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestHealth(t *testing.T) {
	gateway, backend := newGateway(t, seedTask("1", "Buy milk"))

	up := gateway.Health(context.Background())
	if up.Status != model.StatusUp || up.Details["tasks"] != "1" {
		t.Fatalf("health = %+v", up)
	}

	backend.FailNext("/tasks", http.StatusServiceUnavailable)
	down := gateway.Health(context.Background())
	if down.Status != model.StatusDown || down.Details["error"] == "" {
		t.Fatalf("health = %+v", down)
	}
}
