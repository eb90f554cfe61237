// Package apitest runs an in-memory task backend for tests. It serves the
// same four routes as the real backend on an httptest server.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"

	"taskboard/internal/application/middleware"
	"taskboard/internal/domain/entity"
)

// Call records one request received by the backend.
type Call struct {
	Method string
	Path   string
	Body   entity.Task
}

// Backend is a fake task backend.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []entity.Task
	calls    []Call
	failures map[string]int
}

// NewBackend starts a backend seeded with tasks. It is closed with t.Cleanup by the caller.
func NewBackend(tasks ...entity.Task) *Backend {
	b := &Backend{
		tasks:    append([]entity.Task(nil), tasks...),
		failures: make(map[string]int),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupRequestLogger(e)
	e.Use(b.failureMiddleware)

	e.GET("/tasks", b.listTasks)
	e.POST("/addtask", b.addTask)
	e.PUT("/edittask/:id", b.editTask)
	e.DELETE("/deletetask/:id", b.deleteTask)

	b.Server = httptest.NewServer(e)
	return b
}

// FailNext makes the next request to the given route answer with status.
// route is the echo route path, e.g. "/tasks" or "/edittask/:id".
func (b *Backend) FailNext(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

// Tasks returns a copy of the stored tasks.
func (b *Backend) Tasks() []entity.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]entity.Task(nil), b.tasks...)
}

// Calls returns the requests received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// CountCalls counts requests with the given method.
func (b *Backend) CountCalls(method string) int {
	n := 0
	for _, c := range b.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (b *Backend) failureMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		b.mu.Lock()
		status, ok := b.failures[c.Path()]
		if ok {
			delete(b.failures, c.Path())
			b.calls = append(b.calls, Call{Method: c.Request().Method, Path: c.Request().URL.Path})
		}
		b.mu.Unlock()

		if ok {
			return c.JSON(status, map[string]string{"message": http.StatusText(status)})
		}
		return next(c)
	}
}

func (b *Backend) listTasks(c echo.Context) error {
	b.record(c, entity.Task{})
	return c.JSON(http.StatusOK, b.Tasks())
}

func (b *Backend) addTask(c echo.Context) error {
	var task entity.Task
	if err := c.Bind(&task); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid task"})
	}
	b.record(c, task)

	b.mu.Lock()
	b.tasks = append(b.tasks, task)
	b.mu.Unlock()
	return c.JSON(http.StatusCreated, task)
}

func (b *Backend) editTask(c echo.Context) error {
	var task entity.Task
	if err := c.Bind(&task); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid task"})
	}
	b.record(c, task)

	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			task.ID = id
			b.tasks[i] = task
			return c.JSON(http.StatusOK, task)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "task not found"})
}

func (b *Backend) deleteTask(c echo.Context) error {
	b.record(c, entity.Task{})

	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			return c.JSON(http.StatusOK, b.tasks)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"message": "task not found"})
}

func (b *Backend) record(c echo.Context, body entity.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, Call{Method: c.Request().Method, Path: c.Request().URL.Path, Body: body})
}
