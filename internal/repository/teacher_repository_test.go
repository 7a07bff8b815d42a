package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/akademik-api/internal/models"
)

func newTeacherMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTeacherRepositoryFindByUserID(t *testing.T) {
	db, mock, cleanup := newTeacherMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "nip", "full_name", "active", "created_at", "updated_at"}).
		AddRow("teacher-1", "user-1", "197001012000", "Pak Guru", true, time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, user_id, nip, full_name, active, created_at, updated_at\\s+FROM teachers WHERE user_id = \\$1").
		WithArgs("user-1").
		WillReturnRows(rows)

	teacher, err := repo.FindByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", teacher.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryHasAssignment(t *testing.T) {
	db, mock, cleanup := newTeacherMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)
	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}

	mock.ExpectQuery("SELECT 1 FROM teaching_assignments").
		WithArgs("teacher-1", "Mathematics", "11", "IPA", "B").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := repo.HasAssignment(context.Background(), "teacher-1", "Mathematics", class)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryHasAssignmentMissing(t *testing.T) {
	db, mock, cleanup := newTeacherMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)
	class := models.ClassRef{Grade: "10", Major: "IPS", Section: "A"}

	mock.ExpectQuery("SELECT 1 FROM teaching_assignments").
		WithArgs("teacher-1", "Chemistry", "10", "IPS", "A").
		WillReturnError(sql.ErrNoRows)

	ok, err := repo.HasAssignment(context.Background(), "teacher-1", "Chemistry", class)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCountAssignments(t *testing.T) {
	db, mock, cleanup := newTeacherMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM teaching_assignments WHERE teacher_id = \\$1").
		WithArgs("teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountAssignments(context.Background(), "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryListAssignments(t *testing.T) {
	db, mock, cleanup := newTeacherMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"id", "teacher_id", "subject_name", "grade", "major", "section", "created_at"}).
		AddRow("ta-1", "teacher-1", "Mathematics", "11", "IPA", "A", time.Now()).
		AddRow("ta-2", "teacher-1", "Mathematics", "11", "IPA", "B", time.Now())
	mock.ExpectQuery("SELECT id, teacher_id, subject_name, grade, major, section, created_at\\s+FROM teaching_assignments WHERE teacher_id = \\$1").
		WithArgs("teacher-1").
		WillReturnRows(rows)

	assignments, err := repo.ListAssignments(context.Background(), "teacher-1")
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}, assignments[1].Class())
	assert.NoError(t, mock.ExpectationsWereMet())
}
