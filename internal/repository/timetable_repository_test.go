package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/campushq/schoolops-api/internal/models"
)

func newTimetableRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var entryColumnList = []string{"id", "class_id", "class_name", "day_of_week", "time_slot", "subject_id", "subject_name", "teacher_id", "teacher_name", "room", "entry_type", "description", "created_at", "updated_at"}

func entryRow(id, classID, day, slot string) []driver.Value {
	now := time.Date(2024, time.January, 8, 6, 0, 0, 0, time.UTC)
	return []driver.Value{id, classID, nil, day, slot, nil, nil, nil, nil, nil, "LECTURE", nil, now, now}
}

func TestTimetableRepositoryListByClass(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	rows := sqlmock.NewRows(entryColumnList).
		AddRow(entryRow("e1", "class-1", "MONDAY", "07:00-08:00")...).
		AddRow(entryRow("e2", "class-1", "TUESDAY", "09:00-10:00")...)
	mock.ExpectQuery(regexp.QuoteMeta("FROM timetable_entries WHERE class_id = $1 ORDER BY day_of_week ASC, time_slot ASC")).
		WithArgs("class-1").
		WillReturnRows(rows)

	entries, err := repo.ListByClass(context.Background(), "class-1", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "e1", entries[0].ID)
	require.Equal(t, models.EntryTypeLecture, entries[0].EntryType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryListByClassWithTeacher(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	rows := sqlmock.NewRows(entryColumnList).
		AddRow(entryRow("e1", "class-1", "MONDAY", "07:00-08:00")...)
	mock.ExpectQuery(regexp.QuoteMeta("AND teacher_id = $2")).
		WithArgs("class-1", "teacher-7").
		WillReturnRows(rows)

	entries, err := repo.ListByClass(context.Background(), "class-1", "teacher-7")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	rows := sqlmock.NewRows(entryColumnList).
		AddRow(entryRow("e1", "class-1", "MONDAY", "07:00-08:00")...)
	mock.ExpectQuery(regexp.QuoteMeta("FROM timetable_entries WHERE id = $1")).
		WithArgs("e1").
		WillReturnRows(rows)

	entry, err := repo.FindByID(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, "MONDAY", entry.DayOfWeek)

	mock.ExpectQuery(regexp.QuoteMeta("FROM timetable_entries WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO timetable_entries")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.TimetableEntry{
		ClassID:   "class-1",
		DayOfWeek: "MONDAY",
		TimeSlot:  "07:00-08:00",
		EntryType: models.EntryTypeLecture,
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	require.NotEmpty(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE timetable_entries SET class_id = $2")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &models.TimetableEntry{
		ID:        "e1",
		ClassID:   "class-1",
		DayOfWeek: "TUESDAY",
		TimeSlot:  "08:00-09:00",
		EntryType: models.EntryTypePractical,
	}
	require.NoError(t, repo.Update(context.Background(), entry))
	require.False(t, entry.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newTimetableRepoMock(t)
	defer cleanup()

	repo := NewTimetableRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM timetable_entries WHERE id = $1")).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "e1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
