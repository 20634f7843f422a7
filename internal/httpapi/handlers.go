package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"tasklist/internal/domain"
	apperrors "tasklist/internal/errors"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// listTasks handles GET /tasks?status=&client_id=.
func (s *Server) listTasks(c *fiber.Ctx) error {
	status, err := domain.ParseStatus(c.Query("status"))
	if err != nil {
		return writeError(c, apperrors.NewInvalidInputError("status", c.Query("status"), err.Error()))
	}

	ownerTag, err := resolveOwnerTag(c, c.Query("client_id"))
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := s.tasks.FetchTasks(c.UserContext(), status, ownerTag)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(TaskListResponse{Tasks: PresentTasks(tasks)})
}

// createTask handles POST /tasks.
func (s *Server) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperrors.NewInvalidInputError("body", nil, "invalid request body"))
	}

	ownerTag, err := resolveOwnerTag(c, req.ClientID)
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.CreateTask(c.UserContext(), req.Title, ownerTag)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(TaskEnvelope{Task: PresentTask(task)})
}

// toggleTask handles PATCH /tasks/:id/toggle.
func (s *Server) toggleTask(c *fiber.Ctx) error {
	ownerTag, err := resolveOwnerTag(c, c.Query("client_id"))
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.ToggleTask(c.UserContext(), c.Params("id"), ownerTag)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(TaskEnvelope{Task: PresentTask(task)})
}

// updateTask handles PUT /tasks/:id.
func (s *Server) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperrors.NewInvalidInputError("body", nil, "invalid request body"))
	}

	ownerTag, err := resolveOwnerTag(c, req.ClientID)
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.UpdateTaskTitle(c.UserContext(), c.Params("id"), ownerTag, req.Title)
	if err != nil {
		return s.handleServiceError(c, err)
	}

	return c.JSON(TaskEnvelope{Task: PresentTask(task)})
}

// deleteTask handles DELETE /tasks/:id.
func (s *Server) deleteTask(c *fiber.Ctx) error {
	ownerTag, err := resolveOwnerTag(c, c.Query("client_id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := s.tasks.DeleteTask(c.UserContext(), c.Params("id"), ownerTag); err != nil {
		return s.handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// handleServiceError logs system errors and translates the outcome into the
// transport status code. This is the single result-to-status mapping.
func (s *Server) handleServiceError(c *fiber.Ctx, err error) error {
	if apperrors.ShouldLogError(err) {
		s.logger.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
	}
	return writeError(c, err)
}

// writeError maps an error to its HTTP status and JSON body.
func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(ErrorResponse{
		Message: apperrors.GetUserMessage(err),
	})
}

// statusForError maps error kinds to HTTP status codes: validation and bad
// input are client errors, missing tasks are 404, auth failures 401 and
// everything else a generic 500.
func statusForError(err error) int {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return fiber.StatusInternalServerError
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeInvalidInput:
		return fiber.StatusBadRequest
	case apperrors.ErrorTypeNotFound:
		return fiber.StatusNotFound
	case apperrors.ErrorTypeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
