package domain

import (
	"context"
	"time"
)

// DateLayout is the wire and storage format of a work log date.
const DateLayout = "2006-01-02"

// WorkLog is a single dated journal entry owned by one user.
type WorkLog struct {
	ID        string
	OwnerID   string
	Date      time.Time // calendar date, midnight UTC
	Work      string
	IsHoliday bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkLogRepository handles work log persistence. Every method that reads or
// mutates an existing entry is scoped by owner; an entry owned by someone
// else behaves exactly like a missing one (ErrNotFound).
type WorkLogRepository interface {
	Create(ctx context.Context, log *WorkLog) error
	ListByOwner(ctx context.Context, ownerID string) ([]WorkLog, error)
	Update(ctx context.Context, log *WorkLog) error
	Delete(ctx context.Context, ownerID, id string) error
}
