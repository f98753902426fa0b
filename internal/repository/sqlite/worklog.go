package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/daily-log/internal/domain"
)

// WorkLogRepository implements domain.WorkLogRepository using SQLite.
// Dates are stored as YYYY-MM-DD text so lexical order equals date order.
type WorkLogRepository struct {
	db *sql.DB
}

// NewWorkLogRepository creates a new SQLite-backed WorkLogRepository.
func NewWorkLogRepository(db *DB) *WorkLogRepository {
	return &WorkLogRepository{db: db.SqlDB}
}

func (r *WorkLogRepository) Create(ctx context.Context, log *domain.WorkLog) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO work_logs (id, owner_id, log_date, work, is_holiday, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, log.OwnerID, log.Date.Format(domain.DateLayout), log.Work, log.IsHoliday, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert work log: %w", err)
	}

	log.ID = id
	log.CreatedAt = now
	log.UpdatedAt = now
	return nil
}

func (r *WorkLogRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.WorkLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, log_date, work, is_holiday, created_at, updated_at
		 FROM work_logs WHERE owner_id = ?
		 ORDER BY log_date DESC, rowid DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.WorkLog{}
	for rows.Next() {
		var (
			l    domain.WorkLog
			date string
		)
		if err := rows.Scan(&l.ID, &l.OwnerID, &date, &l.Work, &l.IsHoliday, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work log: %w", err)
		}
		if l.Date, err = time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("parse work log date %q: %w", date, err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Update rewrites the mutable fields of an entry the owner holds. The owner
// predicate lives in the statement itself, so ownership is checked atomically.
func (r *WorkLogRepository) Update(ctx context.Context, log *domain.WorkLog) error {
	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx,
		`UPDATE work_logs SET log_date = ?, work = ?, is_holiday = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?
		 RETURNING created_at`,
		log.Date.Format(domain.DateLayout), log.Work, log.IsHoliday, now, log.ID, log.OwnerID,
	).Scan(&log.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update work log: %w", err)
	}

	log.UpdatedAt = now
	return nil
}

func (r *WorkLogRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM work_logs WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
