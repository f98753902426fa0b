package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/daily-log/internal/domain"
)

// WorkLogRepository implements domain.WorkLogRepository on PostgreSQL.
type WorkLogRepository struct {
	db *sql.DB
}

func NewWorkLogRepository(db *sql.DB) *WorkLogRepository {
	return &WorkLogRepository{db: db}
}

func (r *WorkLogRepository) Create(ctx context.Context, log *domain.WorkLog) error {
	id := uuid.NewString()
	now := time.Now().UTC()

	query :=
		`INSERT INTO work_logs (id, owner_id, log_date, work, is_holiday, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		id, log.OwnerID, log.Date.Format(domain.DateLayout), log.Work, log.IsHoliday, now, now)
	if err != nil {
		return fmt.Errorf("insert work log: %w", err)
	}

	log.ID = id
	log.CreatedAt = now
	log.UpdatedAt = now
	return nil
}

func (r *WorkLogRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.WorkLog, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return []domain.WorkLog{}, nil
	}

	query :=
		`SELECT id, owner_id, log_date, work, is_holiday, created_at, updated_at
		 FROM work_logs WHERE owner_id = $1
		 ORDER BY log_date DESC, seq DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.WorkLog{}
	for rows.Next() {
		var l domain.WorkLog
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Date, &l.Work, &l.IsHoliday, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work log: %w", err)
		}
		l.Date = l.Date.UTC()
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *WorkLogRepository) Update(ctx context.Context, log *domain.WorkLog) error {
	if _, err := uuid.Parse(log.ID); err != nil {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()

	query :=
		`UPDATE work_logs SET log_date = $1, work = $2, is_holiday = $3, updated_at = $4
		 WHERE id = $5 AND owner_id = $6
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
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
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM work_logs WHERE id = $1 AND owner_id = $2`, id, ownerID)
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
