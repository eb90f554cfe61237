package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
	"taskboard/internal/domain/model/external"
	"taskboard/pkg/http"
)

// taskGatewayImpl implements the TaskGateway interface
type taskGatewayImpl struct {
	httpClient *http.Client
}

// NewTaskGateway creates a new instance of TaskGateway with HTTP client
func NewTaskGateway(baseUrl string, clientOptions http.ClientOptions) TaskGateway {
	return &taskGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// FindAll fetches every task
func (g *taskGatewayImpl) FindAll(ctx context.Context) ([]entity.Task, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/tasks").
		WithSuccessResp(&[]entity.Task{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, wrapError("fetch tasks", errResp, err)
	}

	tasks := *successResp.(*[]entity.Task)
	if tasks == nil {
		tasks = []entity.Task{}
	}
	return tasks, nil
}

// Create posts a new task
func (g *taskGatewayImpl) Create(ctx context.Context, task entity.Task) error {
	if task.ID == "" {
		return errors.New("task id is required")
	}

	_, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/addtask").
		WithBody(task).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return wrapError("add task", errResp, err)
	}
	return nil
}

// Update replaces a task; the id travels in the path only
func (g *taskGatewayImpl) Update(ctx context.Context, id string, task entity.Task) error {
	if id == "" {
		return errors.New("task id is required")
	}
	task.ID = ""

	_, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.PUT).
		WithPath(fmt.Sprintf("/edittask/%s", url.PathEscape(id))).
		WithBody(task).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return wrapError(fmt.Sprintf("edit task %s", id), errResp, err)
	}
	return nil
}

// Delete removes a task
func (g *taskGatewayImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("task id is required")
	}

	_, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.DELETE).
		WithPath(fmt.Sprintf("/deletetask/%s", url.PathEscape(id))).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return wrapError(fmt.Sprintf("delete task %s", id), errResp, err)
	}
	return nil
}

// Health probes GET /tasks and reports latency and task count
func (g *taskGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	details := map[string]string{"url": g.httpClient.BaseURL()}

	start := time.Now()
	tasks, err := g.FindAll(ctx)
	details["latency"] = time.Since(start).String()

	if err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["tasks"] = strconv.Itoa(len(tasks))
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

// wrapError prefers the backend's own message when it sent one
func wrapError(action string, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Text() != "" {
		return fmt.Errorf("%s: %s: %w", action, apiErr.Text(), err)
	}
	return fmt.Errorf("%s: %w", action, err)
}
