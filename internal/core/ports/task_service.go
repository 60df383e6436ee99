package ports

import (
	"context"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. The project id
// comes from the route and is validated by the ownership gate beforehand.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	PerformerID string
}

// TaskService defines use-case operations for tasks. Every operation trusts
// its projectID argument: the caller must have passed the ownership gate.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput, projectID string) (*domain.Task, error)
	Update(ctx context.Context, taskID string, update TaskUpdate) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string, filter TaskFilter, sort TaskSort) ([]domain.Task, error)
	Delete(ctx context.Context, taskID string) error
}
