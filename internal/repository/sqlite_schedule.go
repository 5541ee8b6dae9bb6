package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"slotplan/internal/db"
	"slotplan/internal/domain"
)

// SQLiteScheduleRunRepo implements ScheduleRunRepo using a SQLite database.
// A run spans three tables: schedule_runs, schedule_days and
// schedule_sessions. Save writes all three; pass a tx-scoped DBTX to make
// the write atomic.
type SQLiteScheduleRunRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRunRepo creates a new SQLiteScheduleRunRepo.
func NewSQLiteScheduleRunRepo(conn db.DBTX) *SQLiteScheduleRunRepo {
	return &SQLiteScheduleRunRepo{db: conn}
}

func (r *SQLiteScheduleRunRepo) Save(ctx context.Context, run *domain.ScheduleRun) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO schedule_runs (id, start_date, generated_at, warnings) VALUES (?, ?, ?, ?)`,
		run.ID,
		run.StartDate.Format(dateLayout),
		run.GeneratedAt.Format(time.RFC3339),
		warningsToJSON(run.Warnings),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule run: %w", err)
	}

	for _, day := range run.Days {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_days (run_id, day_number, date, warnings) VALUES (?, ?, ?, ?)`,
			run.ID,
			day.DayNumber,
			day.Date.Format(dateLayout),
			warningsToJSON(day.Warnings),
		)
		if err != nil {
			return fmt.Errorf("inserting schedule day %d: %w", day.DayNumber, err)
		}

		for _, s := range day.Sessions {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO schedule_sessions (run_id, day_number, task_id, task_name,
					start_minutes, end_minutes, duration_hours, priority, progress)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				run.ID,
				day.DayNumber,
				s.TaskID,
				s.TaskName,
				s.StartMinutes,
				s.EndMinutes,
				s.DurationHours,
				int(s.Priority),
				s.Progress,
			)
			if err != nil {
				return fmt.Errorf("inserting schedule session: %w", err)
			}
		}
	}

	return nil
}

func (r *SQLiteScheduleRunRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, start_date, generated_at, warnings FROM schedule_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (r *SQLiteScheduleRunRepo) Latest(ctx context.Context) (*domain.ScheduleRun, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, start_date, generated_at, warnings FROM schedule_runs
		ORDER BY generated_at DESC, id DESC LIMIT 1`)
	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns run headers (no days) ordered newest first.
func (r *SQLiteScheduleRunRepo) List(ctx context.Context, limit int) ([]*domain.ScheduleRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, start_date, generated_at, warnings FROM schedule_runs
		ORDER BY generated_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ScheduleRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteScheduleRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule run: %w", err)
	}
	return requireRowAffected(res, "schedule run")
}

func (r *SQLiteScheduleRunRepo) loadDays(ctx context.Context, run *domain.ScheduleRun) error {
	dayRows, err := r.db.QueryContext(ctx,
		`SELECT day_number, date, warnings FROM schedule_days WHERE run_id = ? ORDER BY day_number`,
		run.ID)
	if err != nil {
		return fmt.Errorf("listing schedule days: %w", err)
	}
	defer dayRows.Close()

	dayIndex := make(map[int]int)
	for dayRows.Next() {
		var day domain.DaySchedule
		var dateStr, warnings string
		if err := dayRows.Scan(&day.DayNumber, &dateStr, &warnings); err != nil {
			return fmt.Errorf("scanning schedule day: %w", err)
		}
		day.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("parsing day date: %w", err)
		}
		day.Warnings = parseWarnings(warnings)
		dayIndex[day.DayNumber] = len(run.Days)
		run.Days = append(run.Days, day)
	}
	if err := dayRows.Err(); err != nil {
		return fmt.Errorf("iterating schedule days: %w", err)
	}

	sessRows, err := r.db.QueryContext(ctx,
		`SELECT day_number, task_id, task_name, start_minutes, end_minutes,
			duration_hours, priority, progress
		FROM schedule_sessions WHERE run_id = ?
		ORDER BY day_number, start_minutes`,
		run.ID)
	if err != nil {
		return fmt.Errorf("listing schedule sessions: %w", err)
	}
	defer sessRows.Close()

	for sessRows.Next() {
		var s domain.ScheduledSession
		var priority int
		if err := sessRows.Scan(&s.DayNumber, &s.TaskID, &s.TaskName,
			&s.StartMinutes, &s.EndMinutes, &s.DurationHours, &priority, &s.Progress); err != nil {
			return fmt.Errorf("scanning schedule session: %w", err)
		}
		s.Priority = domain.Priority(priority)

		idx, ok := dayIndex[s.DayNumber]
		if !ok {
			return fmt.Errorf("session references unknown day %d in run %s", s.DayNumber, run.ID)
		}
		run.Days[idx].Sessions = append(run.Days[idx].Sessions, s)
	}
	if err := sessRows.Err(); err != nil {
		return fmt.Errorf("iterating schedule sessions: %w", err)
	}

	return nil
}

func scanRun(row rowScanner) (*domain.ScheduleRun, error) {
	var run domain.ScheduleRun
	var startDate, generatedAt, warnings string

	err := row.Scan(&run.ID, &startDate, &generatedAt, &warnings)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule run: %w", err)
	}

	run.StartDate, err = time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing run start_date: %w", err)
	}
	run.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing run generated_at: %w", err)
	}
	run.Warnings = parseWarnings(warnings)

	return &run, nil
}
