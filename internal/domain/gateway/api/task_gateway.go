package api

import (
	"context"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
)

// TaskGateway defines the calls made to the task backend
type TaskGateway interface {
	// FindAll returns the canonical task list (GET /tasks)
	FindAll(ctx context.Context) ([]entity.Task, error)

	// Create stores a new task carrying a client-minted id (POST /addtask)
	Create(ctx context.Context, task entity.Task) error

	// Update replaces the whole task identified by id (PUT /edittask/:id)
	Update(ctx context.Context, id string, task entity.Task) error

	// Delete removes the task identified by id (DELETE /deletetask/:id)
	Delete(ctx context.Context, id string) error

	// Health probes the backend with GET /tasks
	Health(ctx context.Context) model.ComponentHealthStatus
}
