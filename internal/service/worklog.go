package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/daily-log/internal/domain"
)

// WorkLogInput carries the client-editable fields of a work log.
type WorkLogInput struct {
	Date      string
	Work      string
	IsHoliday bool
}

// WorkLogService handles owner-scoped work log CRUD. The ownerID passed to
// every method must come from a verified token, never from request data.
type WorkLogService struct {
	logs domain.WorkLogRepository
}

// NewWorkLogService creates a new WorkLogService.
func NewWorkLogService(logs domain.WorkLogRepository) *WorkLogService {
	return &WorkLogService{logs: logs}
}

// Add validates input and stores a new entry for ownerID.
func (s *WorkLogService) Add(ctx context.Context, ownerID string, in WorkLogInput) (*domain.WorkLog, error) {
	log, err := buildWorkLog(in)
	if err != nil {
		return nil, err
	}
	log.OwnerID = ownerID

	if err := s.logs.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("create work log: %w", err)
	}
	return log, nil
}

// List returns every entry owned by ownerID, most recent date first.
func (s *WorkLogService) List(ctx context.Context, ownerID string) ([]domain.WorkLog, error) {
	logs, err := s.logs.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	if logs == nil {
		logs = []domain.WorkLog{}
	}
	return logs, nil
}

// Update replaces date, work and holiday flag of an entry owned by ownerID.
// Returns domain.ErrNotFound if the entry is missing or belongs to another user.
func (s *WorkLogService) Update(ctx context.Context, ownerID, logID string, in WorkLogInput) (*domain.WorkLog, error) {
	log, err := buildWorkLog(in)
	if err != nil {
		return nil, err
	}
	log.ID = logID
	log.OwnerID = ownerID

	if err := s.logs.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Delete permanently removes an entry owned by ownerID.
func (s *WorkLogService) Delete(ctx context.Context, ownerID, logID string) error {
	return s.logs.Delete(ctx, ownerID, logID)
}

func buildWorkLog(in WorkLogInput) (*domain.WorkLog, error) {
	work := strings.TrimSpace(in.Work)
	if work == "" {
		return nil, fmt.Errorf("%w: work is required", domain.ErrInvalidInput)
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	return &domain.WorkLog{Date: date, Work: work, IsHoliday: in.IsHoliday}, nil
}

// ParseDate accepts a YYYY-MM-DD calendar date or an RFC 3339 timestamp and
// returns the calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	if d, err := time.Parse(domain.DateLayout, s); err == nil {
		return d, nil
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
