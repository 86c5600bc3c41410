package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gotasks/internal/common"
	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64, order SortOrder) ([]models.Task, error) {

	if !order.Valid() {
		order = SortDesc
	}

	// direction is a validated constant, never user input
	direction := "DESC"
	if order == SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		`SELECT id, user_id, title, complete, priority, due_date FROM tasks
		 WHERE user_id = ?
		 ORDER BY priority %s, id ASC`, direction)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	var result []models.Task
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Complete, &item.Priority, &item.DueDate); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (user_id, title, complete, priority, due_date)
		 VALUES (?, ?, ?, ?, ?)
		 `

	res, err := r.db.ExecContext(ctx, query, task.UserID, task.Title, task.Complete, task.Priority, task.DueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error retrieving inserted id: %v", err)
	}
	task.ID = id

	return task, nil
}

func (r *SQLiteRepository) ToggleComplete(ctx context.Context, userID, taskID int64) error {
	query := `UPDATE tasks SET complete = NOT complete WHERE id = ? AND user_id = ?`
	return r.execOwned(ctx, query, taskID, userID)
}

func (r *SQLiteRepository) AdjustPriority(ctx context.Context, userID, taskID int64, delta int) error {
	query := `UPDATE tasks SET priority = priority + ? WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, delta, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust priority: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	return r.execOwned(ctx, query, taskID, userID)
}

func (r *SQLiteRepository) execOwned(ctx context.Context, query string, taskID, userID int64) error {
	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return checkAffected(res.RowsAffected())
}

// checkAffected maps "zero rows touched" to ErrorNotFound. A task owned by
// somebody else falls out of the WHERE clause, so it is reported the same
// way as a missing id.
func checkAffected(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
