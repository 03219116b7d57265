package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tally/internal/modules/report/domain"
	reportout "tally/internal/modules/report/port/out"
	apperrors "tally/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// Same RFC 3339 UTC text layout the session log writes; string range
// comparisons in SQL stay chronological.
const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteSessionSource struct {
	db *sql.DB
}

func NewSQLiteSessionSource(dbPath string) (reportout.SessionSource, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	source := &SQLiteSessionSource{db: db}
	if err := source.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *SQLiteSessionSource) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  task_name TEXT NOT NULL,
  start_time TEXT NOT NULL,
  duration_seconds REAL NOT NULL,
  count INTEGER NOT NULL,
  price REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions (start_time);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionSource) InRange(ctx context.Context, start, end time.Time) ([]domain.Session, error) {
	const query = `
SELECT id, task_name, start_time, duration_seconds, count, price
FROM sessions
WHERE start_time >= ? AND start_time < ?
ORDER BY start_time ASC, id ASC;
`
	rows, err := s.db.QueryContext(ctx, query,
		start.UTC().Format(timeLayout),
		end.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions in range: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *SQLiteSessionSource) List(ctx context.Context) ([]domain.Session, error) {
	const query = `
SELECT id, task_name, start_time, duration_seconds, count, price
FROM sessions
ORDER BY start_time ASC, id ASC;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *SQLiteSessionSource) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

func scanSessions(rows *sql.Rows) ([]domain.Session, error) {
	var sessions []domain.Session
	for rows.Next() {
		var (
			session domain.Session
			started string
			seconds float64
		)
		if err := rows.Scan(&session.ID, &session.Task, &started, &seconds, &session.Count, &session.Price); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ts, err := time.Parse(timeLayout, started)
		if err != nil {
			return nil, fmt.Errorf("parse start_time %q: %w", started, err)
		}
		session.StartedAt = ts.UTC()
		session.Duration = time.Duration(seconds * float64(time.Second))
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}
