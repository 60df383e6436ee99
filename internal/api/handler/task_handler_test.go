package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kkkiikkk/kit-global-test/internal/api/middleware"
	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

type stubProjectService struct {
	createFn func(ctx context.Context, input ports.CreateProjectInput, username string) (*domain.Project, error)
	ownedFn  func(ctx context.Context, projectID, username string) (*domain.Project, error)
}

func (s *stubProjectService) Create(ctx context.Context, input ports.CreateProjectInput, username string) (*domain.Project, error) {
	return s.createFn(ctx, input, username)
}

func (s *stubProjectService) GetOwnedProject(ctx context.Context, projectID, username string) (*domain.Project, error) {
	return s.ownedFn(ctx, projectID, username)
}

type stubTaskService struct {
	createFn func(ctx context.Context, input ports.CreateTaskInput, projectID string) (*domain.Task, error)
	updateFn func(ctx context.Context, taskID string, update ports.TaskUpdate) (*domain.Task, error)
	listFn   func(ctx context.Context, projectID string, filter ports.TaskFilter, sort ports.TaskSort) ([]domain.Task, error)
	deleteFn func(ctx context.Context, taskID string) error
}

func (s *stubTaskService) Create(ctx context.Context, input ports.CreateTaskInput, projectID string) (*domain.Task, error) {
	return s.createFn(ctx, input, projectID)
}

func (s *stubTaskService) Update(ctx context.Context, taskID string, update ports.TaskUpdate) (*domain.Task, error) {
	return s.updateFn(ctx, taskID, update)
}

func (s *stubTaskService) ListByProject(ctx context.Context, projectID string, filter ports.TaskFilter, sort ports.TaskSort) ([]domain.Task, error) {
	return s.listFn(ctx, projectID, filter, sort)
}

func (s *stubTaskService) Delete(ctx context.Context, taskID string) error {
	return s.deleteFn(ctx, taskID)
}

func taskRequest(e *echo.Echo, method, target, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UsernameKey, "alice")
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func gateDenies(projectID string) *stubProjectService {
	return &stubProjectService{
		ownedFn: func(ctx context.Context, id, username string) (*domain.Project, error) {
			if id != projectID {
				return nil, domain.ErrProjectNotFound
			}
			return &domain.Project{ID: id, OwnerID: "owner-1"}, nil
		},
	}
}

func TestTaskHandler_Create_GatedByOwnership(t *testing.T) {
	e := newEcho()
	tasks := &stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput, projectID string) (*domain.Task, error) {
			t.Fatalf("task service must not be reached when the gate denies")
			return nil, nil
		},
	}
	h := NewTaskHandler(gateDenies("mine"), tasks)

	c, _ := taskRequest(e, http.MethodPost, "/api/projects/theirs/tasks", `{"title":"x"}`, map[string]string{"id": "theirs"})
	err := h.Create(c)
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for foreign project, got %v", err)
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	e := newEcho()
	tasks := &stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput, projectID string) (*domain.Task, error) {
			if projectID != "mine" {
				t.Fatalf("unexpected project id: %s", projectID)
			}
			if input.Title != "write tests" {
				t.Fatalf("unexpected title: %s", input.Title)
			}
			return &domain.Task{ID: "t1", Title: input.Title, Status: domain.StatusNew, ProjectID: projectID}, nil
		},
	}
	h := NewTaskHandler(gateDenies("mine"), tasks)

	c, rec := taskRequest(e, http.MethodPost, "/api/projects/mine/tasks", `{"title":"write tests"}`, map[string]string{"id": "mine"})
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTaskHandler_Create_InvalidStatus(t *testing.T) {
	e := newEcho()
	tasks := &stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput, projectID string) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(gateDenies("mine"), tasks)

	c, rec := taskRequest(e, http.MethodPost, "/api/projects/mine/tasks", `{"title":"x","status":"Done"}`, map[string]string{"id": "mine"})
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestTaskHandler_List_PassesFilterAndSort(t *testing.T) {
	e := newEcho()
	tasks := &stubTaskService{
		listFn: func(ctx context.Context, projectID string, filter ports.TaskFilter, sort ports.TaskSort) ([]domain.Task, error) {
			if filter.Status != domain.StatusNew {
				t.Fatalf("filter not passed: %+v", filter)
			}
			if sort.SortBy != "createdAt" || sort.SortOrder != "desc" {
				t.Fatalf("sort not passed: %+v", sort)
			}
			return []domain.Task{}, nil
		},
	}
	h := NewTaskHandler(gateDenies("mine"), tasks)

	c, rec := taskRequest(e, http.MethodGet, "/api/projects/mine/tasks?status=New&sortBy=createdAt&sortOrder=desc", "", map[string]string{"id": "mine"})
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestTaskHandler_Delete_ReturnsEmptyObject(t *testing.T) {
	e := newEcho()
	tasks := &stubTaskService{
		deleteFn: func(ctx context.Context, taskID string) error {
			if taskID != "t1" {
				t.Fatalf("unexpected task id: %s", taskID)
			}
			return nil
		},
	}
	h := NewTaskHandler(gateDenies("mine"), tasks)

	c, rec := taskRequest(e, http.MethodDelete, "/api/projects/mine/tasks/t1", "", map[string]string{"id": "mine", "taskId": "t1"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "{}" {
		t.Fatalf("expected empty object, got %s", rec.Body.String())
	}
}

func TestTaskHandler_Update_NotFoundTask(t *testing.T) {
	e := newEcho()
	tasks := &stubTaskService{
		updateFn: func(ctx context.Context, taskID string, update ports.TaskUpdate) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}
	h := NewTaskHandler(gateDenies("mine"), tasks)

	c, _ := taskRequest(e, http.MethodPut, "/api/projects/mine/tasks/ghost", `{"title":"x"}`, map[string]string{"id": "mine", "taskId": "ghost"})
	err := h.Update(c)
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
