package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tally/internal/modules/catalog/domain"
	catalogout "tally/internal/modules/catalog/port/out"
	apperrors "tally/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteTaskStore struct {
	db *sql.DB
}

func NewSQLiteTaskStore(dbPath string) (catalogout.TaskStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteTaskStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTaskStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
  name TEXT PRIMARY KEY,
  price REAL NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) Upsert(ctx context.Context, task domain.Task) error {
	const stmt = `
INSERT INTO tasks (name, price) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET price=excluded.price;
`
	if _, err := s.db.ExecContext(ctx, stmt, task.Name, task.Price); err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) Get(ctx context.Context, name string) (domain.Task, error) {
	const query = `SELECT name, price FROM tasks WHERE name = ?`
	task := domain.Task{}
	err := s.db.QueryRowContext(ctx, query, name).Scan(&task.Name, &task.Price)
	if err == sql.ErrNoRows {
		return domain.Task{}, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (s *SQLiteTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	const query = `SELECT name, price FROM tasks ORDER BY name ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task := domain.Task{}
		if err := rows.Scan(&task.Name, &task.Price); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Delete removes the catalog row only; the sessions table keeps its
// denormalized task_name copies so no cascade happens.
func (s *SQLiteTaskStore) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
