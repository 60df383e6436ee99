package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

// TaskService implements task operations under an already-gated project.
type TaskService struct {
	tasks ports.TaskRepository
	log   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, log: log}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput, projectID string) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusNew
	}

	now := time.Now().UTC()
	created, err := s.tasks.Create(ctx, &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		ProjectID:   projectID,
		PerformerID: input.PerformerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("project_id", projectID).Msg("task created")
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, taskID string, update ports.TaskUpdate) (*domain.Task, error) {
	return s.tasks.Update(ctx, taskID, update)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID string, filter ports.TaskFilter, sort ports.TaskSort) ([]domain.Task, error) {
	return s.tasks.FindByProject(ctx, projectID, filter, sort)
}

func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	s.log.Info().Str("task_id", taskID).Msg("task deleted")
	return nil
}
