package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tasktrack/internal/models"
)

const (
	StatusDone       = "done"
	StatusIncomplete = "incomplete"

	DefaultPriority = 3
	DefaultCategory = "General"
)

// TaskFilter narrows List results. Zero values mean "no filter".
type TaskFilter struct {
	Category string
	Status   string
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "id, user_id, title, description, priority, category, done, created_at, completed_at"

// List returns the owner's tasks matching the filter, ordered by priority
// then id. Every query is scoped by user_id so tasks of other accounts are
// unreachable here.
func (r *TaskRepository) List(ctx context.Context, ownerID int64, filter TaskFilter) ([]models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = ?"
	args := []any{ownerID}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	switch filter.Status {
	case StatusDone:
		query += " AND done = 1"
	case StatusIncomplete:
		query += " AND done = 0"
	}
	query += " ORDER BY priority, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		err := rows.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Description,
			&task.Priority, &task.Category, &task.Done, &task.CreatedAt, &task.CompletedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Categories returns the distinct category values used by the owner's tasks.
func (r *TaskRepository) Categories(ctx context.Context, ownerID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM tasks WHERE user_id = ?", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, ownerID int64, title, description string, priority int, category string) (*models.Task, error) {
	if priority <= 0 {
		priority = DefaultPriority
	}
	if category == "" {
		category = DefaultCategory
	}

	task := &models.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (user_id, title, description, priority, category, done, created_at) VALUES (?, ?, ?, ?, ?, 0, ?)",
		task.OwnerID, task.Title, task.Description, task.Priority, task.Category, task.CreatedAt)
	if err != nil {
		return nil, err
	}

	task.ID, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) Get(ctx context.Context, ownerID, id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?",
		id, ownerID).Scan(&task.ID, &task.OwnerID, &task.Title, &task.Description,
		&task.Priority, &task.Category, &task.Done, &task.CreatedAt, &task.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update overwrites the editable fields of a task. The done flag, owner and
// timestamps cannot be changed through this operation.
func (r *TaskRepository) Update(ctx context.Context, ownerID, id int64, title, description string, priority int, category string) error {
	if priority <= 0 {
		priority = DefaultPriority
	}
	if category == "" {
		category = DefaultCategory
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, priority = ?, category = ? WHERE id = ? AND user_id = ?",
		title, description, priority, category, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkDone flags a task as completed. Calling it on an already-done task is
// a no-op that keeps the original completion time, so completions never move
// between trend dates.
func (r *TaskRepository) MarkDone(ctx context.Context, ownerID, id int64) error {
	var done bool
	err := r.db.QueryRowContext(ctx,
		"SELECT done FROM tasks WHERE id = ? AND user_id = ?", id, ownerID).Scan(&done)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE tasks SET done = 1, completed_at = ? WHERE id = ? AND user_id = ? AND done = 0",
		time.Now().UTC(), id, ownerID)
	return err
}

// Delete removes a task. Deleting a missing or foreign task is a silent
// no-op.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?", id, ownerID)
	return err
}
