package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tally/internal/modules/tracker/domain"
	trackerout "tally/internal/modules/tracker/port/out"

	_ "modernc.org/sqlite"
)

// Instants are stored as RFC 3339 UTC text, so lexicographic comparison
// in SQL matches chronological order.
const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteSessionLog struct {
	db *sql.DB
}

func NewSQLiteSessionLog(dbPath string) (trackerout.SessionLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log := &SQLiteSessionLog{db: db}
	if err := log.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return log, nil
}

func (l *SQLiteSessionLog) ensureSchema(ctx context.Context) error {
	// task_name is a soft reference: no foreign key, no cascade. History
	// must survive catalog deletes and reprices.
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
	if _, err := l.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (l *SQLiteSessionLog) Append(ctx context.Context, session domain.FinalizedSession) (int64, error) {
	const stmt = `
INSERT INTO sessions (task_name, start_time, duration_seconds, count, price)
VALUES (?, ?, ?, ?, ?);
`
	result, err := l.db.ExecContext(ctx, stmt,
		session.Task,
		session.StartedAt.UTC().Format(timeLayout),
		session.Duration.Seconds(),
		session.Count,
		session.Price,
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session insert id: %w", err)
	}
	return id, nil
}
