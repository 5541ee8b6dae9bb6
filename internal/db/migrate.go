package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		name              TEXT NOT NULL,
		total_hours       REAL NOT NULL CHECK(total_hours > 0),
		hours_per_session REAL NOT NULL CHECK(hours_per_session > 0),
		priority          INTEGER NOT NULL DEFAULT 2 CHECK(priority IN (1, 2, 3)),
		deadline_day      INTEGER NOT NULL CHECK(deadline_day >= 1),
		hours_completed   REAL NOT NULL DEFAULT 0 CHECK(hours_completed >= 0),
		in_progress       INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS closed_slots (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		start_hour    INTEGER NOT NULL,
		start_minute  INTEGER NOT NULL DEFAULT 0,
		end_hour      INTEGER NOT NULL,
		end_minute    INTEGER NOT NULL DEFAULT 0,
		applies_to    TEXT NOT NULL DEFAULT 'all_days'
		              CHECK(applies_to IN ('all_days','weekdays','specific_date')),
		weekdays      TEXT NOT NULL DEFAULT '',
		specific_date TEXT,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                TEXT PRIMARY KEY DEFAULT 'default',
		buffer_minutes    INTEGER NOT NULL DEFAULT 15 CHECK(buffer_minutes >= 0),
		max_tasks_per_day INTEGER NOT NULL DEFAULT 2 CHECK(max_tasks_per_day >= 0),
		start_date        TEXT NOT NULL DEFAULT 'now',
		horizon_days      INTEGER NOT NULL DEFAULT 0 CHECK(horizon_days >= 0)
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS schedule_runs (
		id           TEXT PRIMARY KEY,
		start_date   TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		warnings     TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_days (
		run_id     TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		day_number INTEGER NOT NULL CHECK(day_number >= 1),
		date       TEXT NOT NULL,
		warnings   TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (run_id, day_number)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_sessions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id         TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		day_number     INTEGER NOT NULL,
		task_id        INTEGER NOT NULL,
		task_name      TEXT NOT NULL,
		start_minutes  INTEGER NOT NULL CHECK(start_minutes >= 0),
		end_minutes    INTEGER NOT NULL CHECK(end_minutes <= 1440),
		duration_hours REAL NOT NULL CHECK(duration_hours > 0),
		priority       INTEGER NOT NULL,
		progress       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_days_run ON schedule_days(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_sessions_run ON schedule_sessions(run_id, day_number)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline_day)`,
}
