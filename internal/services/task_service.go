package services

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository/sqlite"
	"tasklist/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
	clock     domain.Clock
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, clock domain.Clock) TaskService {
	return &taskServiceImpl{
		repo:      repo,
		mapper:    domain.NewTaskMapper(),
		validator: validation.NewTaskValidator(),
		clock:     clock,
	}
}

// CreateTask creates a new task with the given title for the given owner
func (s *taskServiceImpl) CreateTask(ctx context.Context, title, ownerTag string) (*domain.Task, error) {
	if err := s.validator.ValidateOwnerTag(ownerTag); err != nil {
		return nil, errors.NewValidationError("invalid owner tag", err)
	}
	if !domain.IsValidTitle(title) {
		return nil, errors.NewInvalidTitleError(title)
	}

	task := domain.NewTask(title, ownerTag, s.clock.Now())

	dbTask := s.mapper.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return &task, nil
}

// FetchTasks returns the tasks owned by ownerTag matching the status filter.
// An empty result is a success, not an error.
func (s *taskServiceImpl) FetchTasks(ctx context.Context, status domain.Status, ownerTag string) ([]*domain.Task, error) {
	if err := s.validator.ValidateOwnerTag(ownerTag); err != nil {
		return nil, errors.NewValidationError("invalid owner tag", err)
	}

	dbTasks, err := s.repo.FindTasksByStatus(ctx, s.mapper.StatusToDatabase(status), ownerTag)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		task := s.mapper.FromDatabase(*dbTask)
		tasks[i] = &task
	}
	return tasks, nil
}

// ToggleTask flips completion state for a task owned by ownerTag
func (s *taskServiceImpl) ToggleTask(ctx context.Context, id, ownerTag string) (*domain.Task, error) {
	task, err := s.getOwnedTask(ctx, id, ownerTag)
	if err != nil {
		return nil, err
	}

	task.ToggleCompleted(s.clock.Now())

	dbTask := s.mapper.ToDatabase(*task)
	if err := s.repo.SaveTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTaskTitle replaces the title of a task owned by ownerTag
func (s *taskServiceImpl) UpdateTaskTitle(ctx context.Context, id, ownerTag, title string) (*domain.Task, error) {
	if !domain.IsValidTitle(title) {
		return nil, errors.NewInvalidTitleError(title)
	}

	task, err := s.getOwnedTask(ctx, id, ownerTag)
	if err != nil {
		return nil, err
	}

	task.Title = title

	dbTask := s.mapper.ToDatabase(*task)
	if err := s.repo.SaveTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task owned by ownerTag
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id, ownerTag string) error {
	if _, err := s.getOwnedTask(ctx, id, ownerTag); err != nil {
		return err
	}

	return s.repo.DeleteTask(ctx, id)
}

// getOwnedTask loads a task by ID and enforces the ownership gate. A task
// owned by someone else reports not found, so a caller probing foreign IDs
// cannot distinguish "absent" from "not yours".
func (s *taskServiceImpl) getOwnedTask(ctx context.Context, id, ownerTag string) (*domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	if err := s.validator.ValidateOwnerTag(ownerTag); err != nil {
		return nil, errors.NewValidationError("invalid owner tag", err)
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := s.mapper.FromDatabase(*dbTask)
	if task.OwnerTag != ownerTag {
		return nil, errors.NewNotFoundError("task", id)
	}

	return &task, nil
}
