package repository

import (
	"context"
	"database/sql"
	"fmt"

	"slotplan/internal/db"
	"slotplan/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// Settings are a singleton row seeded by the migrations.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.SchedulerConfig, error) {
	query := `SELECT buffer_minutes, max_tasks_per_day, start_date, horizon_days
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var cfg domain.SchedulerConfig
	err := row.Scan(
		&cfg.BufferMinutes,
		&cfg.MaxNewTaskStartsPerDay,
		&cfg.StartDate,
		&cfg.HorizonDays,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.SchedulerConfig{}, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return domain.SchedulerConfig{}, fmt.Errorf("scanning settings: %w", err)
	}
	return cfg, nil
}

func (r *SQLiteSettingsRepo) Update(ctx context.Context, cfg domain.SchedulerConfig) error {
	query := `INSERT OR REPLACE INTO settings (id, buffer_minutes, max_tasks_per_day, start_date, horizon_days)
		VALUES ('default', ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		cfg.BufferMinutes,
		cfg.MaxNewTaskStartsPerDay,
		cfg.StartDate,
		cfg.HorizonDays,
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
