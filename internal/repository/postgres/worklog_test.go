package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/msomdec/daily-log/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "11111111-1111-4111-8111-111111111111"
	logID  = "22222222-2222-4222-8222-222222222222"
)

var logColumns = []string{"id", "owner_id", "log_date", "work", "is_holiday", "created_at", "updated_at"}

func TestWorkLogRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO work_logs`)).
		WithArgs(sqlmock.AnyArg(), ownerA, "2024-01-01", "fixed login bug", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	l := &domain.WorkLog{OwnerID: ownerA, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Work: "fixed login bug"}
	require.NoError(t, repo.Create(context.Background(), l))
	assert.NotEmpty(t, l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY log_date DESC, seq DESC`)).
		WithArgs(ownerA).
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow(logID, ownerA, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "newer", true, now, now).
			AddRow("33333333-3333-4333-8333-333333333333", ownerA, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "older", false, now, now))

	logs, err := repo.ListByOwner(context.Background(), ownerA)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "newer", logs[0].Work)
	assert.True(t, logs[0].IsHoliday)
	assert.Equal(t, "2024-01-01", logs[1].Date.Format(domain.DateLayout))
}

func TestWorkLogRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM work_logs WHERE owner_id = $1`)).
		WithArgs(ownerA).
		WillReturnRows(sqlmock.NewRows(logColumns))

	logs, err := repo.ListByOwner(context.Background(), ownerA)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestWorkLogRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE work_logs SET`)).
		WithArgs("2024-03-03", "edited", true, sqlmock.AnyArg(), logID, ownerA).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	l := &domain.WorkLog{ID: logID, OwnerID: ownerA, Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Work: "edited", IsHoliday: true}
	require.NoError(t, repo.Update(context.Background(), l))
	assert.Equal(t, created, l.CreatedAt)
	assert.False(t, l.UpdatedAt.IsZero())
}

func TestWorkLogRepository_Update_NotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $5 AND owner_id = $6`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	err := repo.Update(context.Background(), &domain.WorkLog{ID: logID, OwnerID: ownerA, Work: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkLogRepository_Update_MalformedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	err := repo.Update(context.Background(), &domain.WorkLog{ID: "nope", OwnerID: ownerA, Work: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM work_logs WHERE id = $1 AND owner_id = $2`)).
		WithArgs(logID, ownerA).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), ownerA, logID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkLogRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM work_logs`)).
		WithArgs(logID, ownerA).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), ownerA, logID), domain.ErrNotFound)
}

func TestWorkLogRepository_Delete_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM work_logs`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Delete(context.Background(), ownerA, logID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
