package ports

import (
	"context"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	Status domain.TaskStatus
}

// TaskSort orders a task listing. SortOrder is "asc" or "desc";
// anything else is treated as ascending.
type TaskSort struct {
	SortBy    string
	SortOrder string
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	PerformerID *string
}

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, taskID string, update TaskUpdate) (*domain.Task, error)
	FindByProject(ctx context.Context, projectID string, filter TaskFilter, sort TaskSort) ([]domain.Task, error)
	Delete(ctx context.Context, taskID string) error
}
