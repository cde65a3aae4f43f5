package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

const taskColumns = `id, title, assigned_to, due_date, price_cents, status, notes`

func scanTask(row scanner) (*model.Task, error) {
	var (
		t          model.Task
		due        *time.Time
		priceCents int64
		status     string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.AssignedTo, &due, &priceCents, &status, &t.Notes); err != nil {
		return nil, err
	}
	t.DueDate = dateFrom(due)
	t.Price = fromCents(priceCents)
	t.Status = model.TaskStatus(status)
	return &t, nil
}

// CreateTask сохраняет задачу персонала.
func (r *PostgresRepository) CreateTask(ctx context.Context, t model.Task) (*model.Task, error) {
	created, err := scanTask(r.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, assigned_to, due_date, price_cents, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+taskColumns,
		t.Title, t.AssignedTo, dateArg(t.DueDate), toCents(t.Price), string(t.Status), t.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return created, nil
}

// GetTask возвращает задачу по идентификатору.
func (r *PostgresRepository) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	var t *model.Task
	err := r.withRetry(ctx, func() error {
		var err error
		t, err = scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListTasks возвращает все задачи.
func (r *PostgresRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

// ListTasksByStatus возвращает задачи в указанном статусе.
func (r *PostgresRepository) ListTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE status = $1 ORDER BY id`, string(status))
}

func (r *PostgresRepository) queryTasks(ctx context.Context, sql string, args ...any) ([]model.Task, error) {
	var tasks []model.Task
	err := r.withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		tasks = tasks[:0]
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return fmt.Errorf("scan task: %w", err)
			}
			tasks = append(tasks, *t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus меняет статус задачи.
func (r *PostgresRepository) UpdateTaskStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error) {
	t, err := scanTask(r.pool.QueryRow(ctx,
		`UPDATE tasks SET status = $2 WHERE id = $1 RETURNING `+taskColumns,
		id, string(status),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// DeleteTask удаляет задачу.
func (r *PostgresRepository) DeleteTask(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
