package tasks

import (
	"context"

	"github.com/dmitrijs2005/gotasks/internal/server/models"
)

// SortOrder selects the list-view ordering by priority. The source system
// flipped between the two across revisions, so the direction is an explicit
// choice here rather than a hardcoded one.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is one of the two supported directions.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// Repository gives access to the tasks of a user. Every mutation is scoped
// by owner: a task id belonging to a different user behaves exactly like a
// missing one.
type Repository interface {
	ListByUser(ctx context.Context, userID int64, order SortOrder) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ToggleComplete(ctx context.Context, userID, taskID int64) error
	AdjustPriority(ctx context.Context, userID, taskID int64, delta int) error
	Delete(ctx context.Context, userID, taskID int64) error
}
