package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, order SortOrder) ([]models.Task, error) {

	if !order.Valid() {
		order = SortDesc
	}

	direction := "DESC"
	if order == SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		`SELECT id, user_id, title, complete, priority, due_date FROM tasks
		 WHERE user_id = $1
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

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (user_id, title, complete, priority, due_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, task.UserID, task.Title, task.Complete, task.Priority, task.DueDate).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ToggleComplete(ctx context.Context, userID, taskID int64) error {
	query := `UPDATE tasks SET complete = NOT complete WHERE id = $1 AND user_id = $2`
	return r.execOwned(ctx, query, taskID, userID)
}

func (r *PostgresRepository) AdjustPriority(ctx context.Context, userID, taskID int64, delta int) error {
	query := `UPDATE tasks SET priority = priority + $1 WHERE id = $2 AND user_id = $3`

	res, err := r.db.ExecContext(ctx, query, delta, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust priority: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	return r.execOwned(ctx, query, taskID, userID)
}

func (r *PostgresRepository) execOwned(ctx context.Context, query string, taskID, userID int64) error {
	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return checkAffected(res.RowsAffected())
}
