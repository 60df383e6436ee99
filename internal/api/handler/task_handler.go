package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

// TaskHandler handles HTTP requests for tasks nested under a project. Every
// operation first resolves the project through the ownership gate; only then
// is the task-level call made, trusting the validated project id.
type TaskHandler struct {
	projectService ports.ProjectService
	taskService    ports.TaskService
}

func NewTaskHandler(projectService ports.ProjectService, taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{projectService: projectService, taskService: taskService}
}

type createTaskRequest struct {
	Title       string `json:"title"                 validate:"required"`
	Description string `json:"description,omitempty" validate:"omitempty,min=50,max=500"`
	Status      string `json:"status,omitempty"      validate:"omitempty,oneof=New In-progress Completed"`
	PerformerID string `json:"performerId,omitempty"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=50,max=500"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=New In-progress Completed"`
	PerformerID *string `json:"performerId,omitempty"`
}

// gate resolves the project from the route against the authenticated user.
// A foreign project surfaces as not-found, never as forbidden.
func (h *TaskHandler) gate(c echo.Context) (string, error) {
	username, err := ctxUsername(c)
	if err != nil {
		return "", err
	}

	project, err := h.projectService.GetOwnedProject(c.Request().Context(), c.Param("id"), username)
	if err != nil {
		return "", err
	}
	return project.ID, nil
}

// Create handles POST /api/projects/:id/tasks.
//
// @Summary      Create a new task in a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Project ID"
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	projectID, err := h.gate(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		PerformerID: req.PerformerID,
	}, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// Update handles PUT /api/projects/:id/tasks/:taskId.
//
// @Summary      Update a task in a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string             true  "Project ID"
// @Param        taskId  path      string             true  "Task ID"
// @Param        body    body      updateTaskRequest  true  "Fields to update"
// @Success      200     {object}  domain.Task
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/projects/{id}/tasks/{taskId} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	if _, err := h.gate(c); err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		PerformerID: req.PerformerID,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}

	task, err := h.taskService.Update(c.Request().Context(), c.Param("taskId"), update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// List handles GET /api/projects/:id/tasks with optional filter and sort.
//
// @Summary      Get tasks of a project with filters and sorting
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true   "Project ID"
// @Param        status     query     string  false  "Filter by task status"
// @Param        sortBy     query     string  false  "Field to sort by"
// @Param        sortOrder  query     string  false  "Sort order (asc or desc)"
// @Success      200        {array}   domain.Task
// @Failure      401        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/projects/{id}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	projectID, err := h.gate(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListByProject(c.Request().Context(), projectID,
		ports.TaskFilter{Status: domain.TaskStatus(c.QueryParam("status"))},
		ports.TaskSort{SortBy: c.QueryParam("sortBy"), SortOrder: c.QueryParam("sortOrder")},
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// Delete handles DELETE /api/projects/:id/tasks/:taskId.
//
// @Summary      Delete a task in a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Project ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/projects/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if _, err := h.gate(c); err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), c.Param("taskId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{})
}
