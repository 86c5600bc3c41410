package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/common"
	"github.com/dmitrijs2005/gotasks/internal/server/config"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/tasks"
)

// TaskService implements the task list operations. Every call is scoped to
// the acting user; a task id belonging to somebody else is reported as
// ErrorNotFound, never touched.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sortOrder   tasks.SortOrder
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TaskService {
	order := tasks.SortOrder(cfg.TaskSortOrder)
	if !order.Valid() {
		order = tasks.SortDesc
	}
	return &TaskService{db: db, repomanager: m, sortOrder: order}
}

// List returns the user's tasks ordered by priority in the configured
// direction. No pagination; the result set is whatever the user has.
func (s *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repomanager.Tasks(s.db).ListByUser(ctx, userID, s.sortOrder)
}

// Create parses the due date ("YYYY-MM-DD") and inserts a task with the
// defaults: not complete, priority 3. Empty titles and malformed dates
// yield ErrorValidation instead of the unhandled fault the handler would
// otherwise surface.
func (s *TaskService) Create(ctx context.Context, userID int64, title, dueDate string) (*models.Task, error) {

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	due, err := time.Parse(common.DueDateLayout, strings.TrimSpace(dueDate))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q, expected YYYY-MM-DD", common.ErrorValidation, dueDate)
	}

	task := &models.Task{
		UserID:   userID,
		Title:    title,
		Complete: false,
		Priority: models.DefaultPriority,
		DueDate:  due,
	}

	t, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}

	return t, nil
}

// ToggleComplete flips the completion flag. Toggling twice restores the
// original value.
func (s *TaskService) ToggleComplete(ctx context.Context, userID, taskID int64) error {
	return s.repomanager.Tasks(s.db).ToggleComplete(ctx, userID, taskID)
}

// Promote raises the task's priority by one. The counter is unbounded.
func (s *TaskService) Promote(ctx context.Context, userID, taskID int64) error {
	return s.repomanager.Tasks(s.db).AdjustPriority(ctx, userID, taskID, +1)
}

// Demote lowers the task's priority by one. No lower bound either: the
// value may go negative.
func (s *TaskService) Demote(ctx context.Context, userID, taskID int64) error {
	return s.repomanager.Tasks(s.db).AdjustPriority(ctx, userID, taskID, -1)
}

// Delete removes the task permanently.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return s.repomanager.Tasks(s.db).Delete(ctx, userID, taskID)
}
