package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"slotplan/internal/db"
	"slotplan/internal/domain"
)

const closedSlotColumns = `id, start_hour, start_minute, end_hour, end_minute,
		applies_to, weekdays, specific_date, created_at`

// SQLiteClosedSlotRepo implements ClosedSlotRepo using a SQLite database.
type SQLiteClosedSlotRepo struct {
	db db.DBTX
}

// NewSQLiteClosedSlotRepo creates a new SQLiteClosedSlotRepo.
func NewSQLiteClosedSlotRepo(conn db.DBTX) *SQLiteClosedSlotRepo {
	return &SQLiteClosedSlotRepo{db: conn}
}

func (r *SQLiteClosedSlotRepo) Create(ctx context.Context, s *domain.ClosedTimeSlot) error {
	query := `INSERT INTO closed_slots (start_hour, start_minute, end_hour, end_minute,
		applies_to, weekdays, specific_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	var specificDate any
	if s.SpecificDate != "" {
		specificDate = s.SpecificDate
	}
	res, err := r.db.ExecContext(ctx, query,
		s.StartHour,
		s.StartMinute,
		s.EndHour,
		s.EndMinute,
		string(s.Scope),
		weekdaysToString(s.Weekdays),
		specificDate,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting closed slot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading closed slot id: %w", err)
	}
	s.ID = int(id)
	return nil
}

func (r *SQLiteClosedSlotRepo) GetByID(ctx context.Context, id int) (*domain.ClosedTimeSlot, error) {
	query := `SELECT ` + closedSlotColumns + ` FROM closed_slots WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanClosedSlot(row)
}

func (r *SQLiteClosedSlotRepo) List(ctx context.Context) ([]*domain.ClosedTimeSlot, error) {
	query := `SELECT ` + closedSlotColumns + ` FROM closed_slots ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing closed slots: %w", err)
	}
	defer rows.Close()

	var slots []*domain.ClosedTimeSlot
	for rows.Next() {
		s, err := scanClosedSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating closed slots: %w", err)
	}
	return slots, nil
}

func (r *SQLiteClosedSlotRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM closed_slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting closed slot: %w", err)
	}
	return requireRowAffected(res, "closed slot")
}

func (r *SQLiteClosedSlotRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM closed_slots`); err != nil {
		return fmt.Errorf("deleting closed slots: %w", err)
	}
	return nil
}

func scanClosedSlot(row rowScanner) (*domain.ClosedTimeSlot, error) {
	var s domain.ClosedTimeSlot
	var scope, weekdays, createdAt string
	var specificDate sql.NullString

	err := row.Scan(
		&s.ID, &s.StartHour, &s.StartMinute, &s.EndHour, &s.EndMinute,
		&scope, &weekdays, &specificDate, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("closed slot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning closed slot: %w", err)
	}

	s.Scope = domain.SlotScope(scope)
	s.Weekdays = parseWeekdays(weekdays)
	if specificDate.Valid {
		s.SpecificDate = specificDate.String
	}

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return &s, nil
}
