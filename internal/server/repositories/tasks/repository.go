package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskvault/internal/server/models"
)

// Repository is the owner-scoped task store. Every method that addresses a
// single task takes the owner's user id and treats a task owned by anyone
// else the same as a missing one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, taskID, userID string) (*models.Task, error)
	List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, taskID, userID string) error
}
