package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
)

func newMarkMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func markRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "student_id", "subject_name", "academic_year", "semester", "score", "created_at", "updated_at"})
}

func TestMarkRepositoryFindForUpdateLocksRow(t *testing.T) {
	db, mock, cleanup := newMarkMock(t)
	defer cleanup()
	repo := NewMarkRepository(db)
	period := academic.Period{AcademicYear: "2026", Semester: academic.SemesterFirst}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM subject_marks\\s+WHERE student_id = \\$1 AND subject_name = \\$2 AND academic_year = \\$3 AND semester = \\$4\\s+FOR UPDATE").
		WithArgs("student-1", "Mathematics", "2026", string(academic.SemesterFirst)).
		WillReturnRows(markRows().AddRow("mark-1", "student-1", "Mathematics", "2026", "FIRST", 85.0, time.Now(), time.Now()))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	mark, err := repo.FindForUpdate(context.Background(), tx, "student-1", "Mathematics", period)
	require.NoError(t, err)
	assert.Equal(t, "mark-1", mark.ID)
	assert.Equal(t, academic.SemesterFirst, mark.Semester)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRepositoryFindForUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newMarkMock(t)
	defer cleanup()
	repo := NewMarkRepository(db)
	period := academic.Period{AcademicYear: "2026", Semester: academic.SemesterSecond}

	mock.ExpectBegin()
	mock.ExpectQuery("(?s)SELECT (.+) FROM subject_marks.+FOR UPDATE").
		WithArgs("student-1", "Physics", "2026", string(academic.SemesterSecond)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	_, err = repo.FindForUpdate(context.Background(), tx, "student-1", "Physics", period)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRepositoryUpdateScore(t *testing.T) {
	db, mock, cleanup := newMarkMock(t)
	defer cleanup()
	repo := NewMarkRepository(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE subject_marks SET score = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(92.5, now, "mark-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.UpdateScore(context.Background(), tx, "mark-1", 92.5, now))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRepositoryUpdateScoreZeroRows(t *testing.T) {
	db, mock, cleanup := newMarkMock(t)
	defer cleanup()
	repo := NewMarkRepository(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE subject_marks SET").
		WithArgs(50.0, now, "mark-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	err = repo.UpdateScore(context.Background(), tx, "mark-gone", 50, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mark-gone")

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newMarkMock(t)
	defer cleanup()
	repo := NewMarkRepository(db)
	period := academic.Period{AcademicYear: "2026", Semester: academic.SemesterFirst}

	mock.ExpectQuery("SELECT (.+) FROM subject_marks\\s+WHERE student_id = \\$1 AND academic_year = \\$2 AND semester = \\$3").
		WithArgs("student-1", "2026", string(academic.SemesterFirst)).
		WillReturnRows(markRows().
			AddRow("mark-1", "student-1", "Biology", "2026", "FIRST", 78.0, time.Now(), time.Now()).
			AddRow("mark-2", "student-1", "Mathematics", "2026", "FIRST", 85.0, time.Now(), time.Now()))

	marks, err := repo.ListByStudent(context.Background(), "student-1", period)
	require.NoError(t, err)
	assert.Len(t, marks, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRepositoryListByClassSubject(t *testing.T) {
	db, mock, cleanup := newMarkMock(t)
	defer cleanup()
	repo := NewMarkRepository(db)
	period := academic.Period{AcademicYear: "2026", Semester: academic.SemesterSecond}
	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}

	rows := sqlmock.NewRows([]string{"id", "student_id", "subject_name", "academic_year", "semester", "score", "created_at", "updated_at", "student_name", "nis"}).
		AddRow("mark-1", "student-1", "Mathematics", "2026", "SECOND", 88.0, time.Now(), time.Now(), "Siti", "001")

	mock.ExpectQuery("(?s)SELECT m.id, m.student_id, .+FROM subject_marks m\\s+JOIN students s ON s.id = m.student_id").
		WithArgs("11", "IPA", "B", "Mathematics", "2026", string(academic.SemesterSecond)).
		WillReturnRows(rows)

	marks, err := repo.ListByClassSubject(context.Background(), class, "Mathematics", period)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, "Siti", marks[0].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
