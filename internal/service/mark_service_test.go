package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/pkg/database"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type fakeUnitOfWork struct {
	begun      int
	committed  bool
	rolledBack bool
}

func (u *fakeUnitOfWork) WithinTx(ctx context.Context, fn func(tx database.Tx) error) error {
	u.begun++
	if err := fn(nil); err != nil {
		u.rolledBack = true
		return err
	}
	u.committed = true
	return nil
}

type appliedWrite struct {
	id    string
	score float64
}

type mockMarkRepo struct {
	rows        map[string]*models.SubjectMark
	lookups     []academic.Period
	writes      []appliedWrite
	updateErr   error
	listStudent []models.SubjectMark
	listClass   []models.SubjectMarkDetail
}

func markKey(studentID, subjectName string, period academic.Period) string {
	return fmt.Sprintf("%s|%s|%s", studentID, subjectName, period)
}

func (m *mockMarkRepo) FindForUpdate(ctx context.Context, tx database.Tx, studentID, subjectName string, period academic.Period) (*models.SubjectMark, error) {
	m.lookups = append(m.lookups, period)
	row, ok := m.rows[markKey(studentID, subjectName, period)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return row, nil
}

func (m *mockMarkRepo) UpdateScore(ctx context.Context, tx database.Tx, id string, score float64, now time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.writes = append(m.writes, appliedWrite{id: id, score: score})
	return nil
}

func (m *mockMarkRepo) ListByStudent(ctx context.Context, studentID string, period academic.Period) ([]models.SubjectMark, error) {
	return m.listStudent, nil
}

func (m *mockMarkRepo) ListByClassSubject(ctx context.Context, class models.ClassRef, subjectName string, period academic.Period) ([]models.SubjectMarkDetail, error) {
	return m.listClass, nil
}

type mockMarkStudentReader struct {
	students map[string]*models.Student
}

func (m *mockMarkStudentReader) FindByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return student, nil
}

type mockMarkScopeChecker struct {
	count       int
	countErr    error
	assignments map[string]bool
}

func scopeKey(teacherID, subjectName string, class models.ClassRef) string {
	return fmt.Sprintf("%s|%s|%s", teacherID, subjectName, class.Label())
}

func (m *mockMarkScopeChecker) HasAssignment(ctx context.Context, teacherID, subjectName string, class models.ClassRef) (bool, error) {
	return m.assignments[scopeKey(teacherID, subjectName, class)], nil
}

func (m *mockMarkScopeChecker) CountAssignments(ctx context.Context, teacherID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

type mockMarkAudit struct {
	logs []*models.AuditLog
}

func (m *mockMarkAudit) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	m.logs = append(m.logs, log)
	return nil
}

type markFixture struct {
	uow      *fakeUnitOfWork
	marks    *mockMarkRepo
	students *mockMarkStudentReader
	teachers *mockMarkScopeChecker
	audit    *mockMarkAudit
	svc      *MarkService
	period   academic.Period
}

func teacherSession() *models.ScopedSession {
	return &models.ScopedSession{
		UserID: "user-t1",
		Role:   models.RoleTeacher,
		Teacher: &models.TeacherScope{
			TeacherID: "teacher-1",
			FullName:  "Pak Guru",
		},
	}
}

// newMarkFixture seeds two students in 11 IPA B with provisioned Math rows
// and a teacher assigned to teach Math there, frozen mid first semester.
func newMarkFixture(t *testing.T) *markFixture {
	t.Helper()

	frozen := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	resolver := academic.NewResolver(academic.Cutoff{Month: time.July, Day: 1}, func() time.Time { return frozen })
	period := resolver.Current()

	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}
	marks := &mockMarkRepo{rows: map[string]*models.SubjectMark{
		markKey("student-1", "Mathematics", period): {ID: "mark-1", StudentID: "student-1", SubjectName: "Mathematics"},
		markKey("student-2", "Mathematics", period): {ID: "mark-2", StudentID: "student-2", SubjectName: "Mathematics"},
	}}
	students := &mockMarkStudentReader{students: map[string]*models.Student{
		"student-1": {ID: "student-1", FullName: "Siti", Grade: class.Grade, Major: class.Major, Section: class.Section},
		"student-2": {ID: "student-2", FullName: "Budi", Grade: class.Grade, Major: class.Major, Section: class.Section},
	}}
	teachers := &mockMarkScopeChecker{
		count: 2,
		assignments: map[string]bool{
			scopeKey("teacher-1", "Mathematics", class): true,
		},
	}
	uow := &fakeUnitOfWork{}
	audit := &mockMarkAudit{}

	return &markFixture{
		uow:      uow,
		marks:    marks,
		students: students,
		teachers: teachers,
		audit:    audit,
		svc:      NewMarkService(uow, marks, students, teachers, resolver, audit, nil, zap.NewNop()),
		period:   period,
	}
}

func TestMarkSubmitBatchSuccess(t *testing.T) {
	f := newMarkFixture(t)

	result, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Mathematics", Score: 88},
		{StudentID: "student-2", SubjectName: "Mathematics", Score: 74.5},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, f.period.AcademicYear, result.AcademicYear)
	assert.Equal(t, f.period.Semester, result.Semester)
	assert.True(t, f.uow.committed)
	require.Len(t, f.marks.writes, 2)
	assert.Equal(t, appliedWrite{id: "mark-1", score: 88}, f.marks.writes[0])
	assert.Equal(t, appliedWrite{id: "mark-2", score: 74.5}, f.marks.writes[1])
	require.Len(t, f.audit.logs, 1)
	assert.Equal(t, models.AuditActionMarkSubmit, f.audit.logs[0].Action)
}

func TestMarkSubmitBatchRequiresTeacherSession(t *testing.T) {
	f := newMarkFixture(t)

	_, err := f.svc.SubmitBatch(context.Background(), &models.ScopedSession{UserID: "u", Role: models.RolePrincipal}, SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Mathematics", Score: 80},
	}})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Zero(t, f.uow.begun)
}

func TestMarkSubmitBatchEmptyAssignmentScopeForbidden(t *testing.T) {
	f := newMarkFixture(t)
	f.teachers.count = 0

	_, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Mathematics", Score: 80},
	}})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Equal(t, "no teaching assignments for this teacher", appErr.Message)
	assert.Zero(t, f.uow.begun)
}

func TestMarkSubmitBatchValidation(t *testing.T) {
	f := newMarkFixture(t)

	tests := []struct {
		name  string
		items []models.MarkBatchItem
	}{
		{"empty batch", nil},
		{"score above range", []models.MarkBatchItem{{StudentID: "student-1", SubjectName: "Mathematics", Score: 100.5}}},
		{"score below range", []models.MarkBatchItem{{StudentID: "student-1", SubjectName: "Mathematics", Score: -1}}},
		{"missing subject", []models.MarkBatchItem{{StudentID: "student-1", Score: 80}}},
		{"missing student", []models.MarkBatchItem{{SubjectName: "Mathematics", Score: 80}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: tt.items})
			var appErr *appErrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		})
	}
	assert.Zero(t, f.uow.begun)
	assert.Empty(t, f.marks.writes)
}

func TestMarkSubmitBatchUnknownStudentAbortsWholeBatch(t *testing.T) {
	f := newMarkFixture(t)

	_, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Mathematics", Score: 90},
		{StudentID: "student-ghost", SubjectName: "Mathematics", Score: 70},
		{StudentID: "student-2", SubjectName: "Mathematics", Score: 60},
	}})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "student-ghost")

	assert.True(t, f.uow.rolledBack)
	assert.False(t, f.uow.committed)
	assert.Empty(t, f.marks.writes)
	// Items are checked in submission order; the failure stops the walk
	// before the third item is ever looked at.
	assert.Len(t, f.marks.lookups, 1)
	assert.Empty(t, f.audit.logs)
}

func TestMarkSubmitBatchOutOfScopeItemForbidden(t *testing.T) {
	f := newMarkFixture(t)
	otherClass := models.ClassRef{Grade: "10", Major: "IPS", Section: "A"}
	f.students.students["student-3"] = &models.Student{ID: "student-3", FullName: "Andi", Grade: otherClass.Grade, Major: otherClass.Major, Section: otherClass.Section}

	_, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Mathematics", Score: 90},
		{StudentID: "student-3", SubjectName: "Mathematics", Score: 70},
	}})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Contains(t, appErr.Message, otherClass.Label())
	assert.Empty(t, f.marks.writes)
}

func TestMarkSubmitBatchMissingRecordIsNotFoundNeverCreate(t *testing.T) {
	f := newMarkFixture(t)
	// The student exists and is in scope but no row was provisioned for
	// this subject and period.
	f.teachers.assignments[scopeKey("teacher-1", "Physics", models.ClassRef{Grade: "11", Major: "IPA", Section: "B"})] = true

	_, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Physics", Score: 66},
	}})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Physics")
	assert.Contains(t, appErr.Message, f.period.String())
	assert.Empty(t, f.marks.writes)
	assert.True(t, f.uow.rolledBack)
}

func TestMarkSubmitBatchResolvesPeriodOnce(t *testing.T) {
	// The clock starts just before the semester cutoff and jumps past it
	// after the first read. Every item must still resolve to the period
	// captured at submission time.
	times := []time.Time{
		time.Date(2026, time.June, 30, 23, 59, 59, 0, time.UTC),
		time.Date(2026, time.July, 1, 0, 0, 1, 0, time.UTC),
		time.Date(2026, time.July, 1, 0, 0, 2, 0, time.UTC),
	}
	calls := 0
	resolver := academic.NewResolver(academic.Cutoff{Month: time.July, Day: 1}, func() time.Time {
		at := times[calls%len(times)]
		calls++
		return at
	})
	period := academic.Period{AcademicYear: "2026", Semester: academic.SemesterFirst}

	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}
	marks := &mockMarkRepo{rows: map[string]*models.SubjectMark{
		markKey("student-1", "Mathematics", period): {ID: "mark-1"},
		markKey("student-2", "Mathematics", period): {ID: "mark-2"},
	}}
	students := &mockMarkStudentReader{students: map[string]*models.Student{
		"student-1": {ID: "student-1", Grade: class.Grade, Major: class.Major, Section: class.Section},
		"student-2": {ID: "student-2", Grade: class.Grade, Major: class.Major, Section: class.Section},
	}}
	teachers := &mockMarkScopeChecker{count: 1, assignments: map[string]bool{
		scopeKey("teacher-1", "Mathematics", class): true,
	}}
	uow := &fakeUnitOfWork{}
	svc := NewMarkService(uow, marks, students, teachers, resolver, nil, nil, zap.NewNop())

	result, err := svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: []models.MarkBatchItem{
		{StudentID: "student-1", SubjectName: "Mathematics", Score: 80},
		{StudentID: "student-2", SubjectName: "Mathematics", Score: 81},
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, uow.begun)
	assert.Equal(t, period.AcademicYear, result.AcademicYear)
	assert.Equal(t, period.Semester, result.Semester)
	for _, seen := range marks.lookups {
		assert.Equal(t, period, seen)
	}
}

func TestMarkSubmitBatchFailurePositionInvariant(t *testing.T) {
	orders := [][]models.MarkBatchItem{
		{
			{StudentID: "student-ghost", SubjectName: "Mathematics", Score: 70},
			{StudentID: "student-1", SubjectName: "Mathematics", Score: 90},
		},
		{
			{StudentID: "student-1", SubjectName: "Mathematics", Score: 90},
			{StudentID: "student-ghost", SubjectName: "Mathematics", Score: 70},
		},
	}

	for i, items := range orders {
		f := newMarkFixture(t)
		_, err := f.svc.SubmitBatch(context.Background(), teacherSession(), SubmitMarksRequest{Items: items})
		var appErr *appErrors.Error
		require.ErrorAs(t, err, &appErr, "order %d", i)
		assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code, "order %d", i)
		assert.Empty(t, f.marks.writes, "order %d", i)
		assert.False(t, f.uow.committed, "order %d", i)
	}
}

func TestMarkListForAssignmentChecksScope(t *testing.T) {
	f := newMarkFixture(t)
	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}
	f.marks.listClass = []models.SubjectMarkDetail{{StudentName: "Siti", NIS: "001"}}

	marks, err := f.svc.ListForAssignment(context.Background(), teacherSession(), "Mathematics", class)
	require.NoError(t, err)
	assert.Len(t, marks, 1)

	_, err = f.svc.ListForAssignment(context.Background(), teacherSession(), "Chemistry", class)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}
