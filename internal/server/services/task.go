package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskUpdate carries a partial task update. Nil fields keep their stored
// value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
}

// TaskService implements task CRUD for authenticated users. Every operation
// is scoped to the calling user; a task owned by someone else behaves
// exactly like a missing one (common.ErrorNotFound).
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService using repositories.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create stores a new task owned by userID. Status defaults to pending and
// priority to medium when left empty.
func (s *TaskService) Create(ctx context.Context, userID string, task *models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	task.ID = uuid.NewString()
	task.UserID = userID

	repo := s.repomanager.Tasks(s.db)
	t, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return t, nil
}

// Get returns the task with taskID if it is owned by userID.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*models.Task, error) {
	if uuid.Validate(taskID) != nil {
		return nil, common.ErrorNotFound
	}
	repo := s.repomanager.Tasks(s.db)
	return repo.GetByID(ctx, taskID, userID)
}

// List returns the tasks owned by userID, optionally narrowed by filter,
// newest first.
func (s *TaskService) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.List(ctx, userID, filter)
}

// Update applies upd to the task with taskID owned by userID and returns the
// updated task. Status changes are unrestricted: any status may replace any
// other.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, upd TaskUpdate) (*models.Task, error) {
	if uuid.Validate(taskID) != nil {
		return nil, common.ErrorNotFound
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}

	if err := validateTask(task); err != nil {
		return nil, err
	}

	return repo.Update(ctx, task)
}

// Delete removes the task with taskID if it is owned by userID.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if uuid.Validate(taskID) != nil {
		return common.ErrorNotFound
	}
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, taskID, userID)
}

func validateTask(task *models.Task) error {
	if task.Title == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if !task.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", common.ErrorValidation, task.Status)
	}
	if !task.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", common.ErrorValidation, task.Priority)
	}
	return nil
}
