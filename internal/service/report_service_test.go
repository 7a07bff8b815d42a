package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type mockReportMarks struct {
	marks  []models.SubjectMarkDetail
	period academic.Period
}

func (m *mockReportMarks) ListByClassSubject(ctx context.Context, class models.ClassRef, subjectName string, period academic.Period) ([]models.SubjectMarkDetail, error) {
	m.period = period
	return m.marks, nil
}

func reportResolver() *academic.Resolver {
	frozen := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	return academic.NewResolver(academic.Cutoff{Month: time.July, Day: 1}, func() time.Time { return frozen })
}

func TestReportClassMarkSheetCSV(t *testing.T) {
	marks := &mockReportMarks{marks: []models.SubjectMarkDetail{
		{SubjectMark: models.SubjectMark{SubjectName: "Mathematics", Score: 88}, StudentName: "Siti", NIS: "001"},
		{SubjectMark: models.SubjectMark{SubjectName: "Mathematics", Score: 74.5}, StudentName: "Budi", NIS: "002"},
	}}
	svc := NewReportService(marks, reportResolver(), zap.NewNop())
	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}

	payload, contentType, filename, err := svc.ClassMarkSheet(context.Background(), class, "Mathematics", ReportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "marks_11_IPA_B_2026_SECOND.csv", filename)
	assert.Equal(t, academic.Period{AcademicYear: "2026", Semester: academic.SemesterSecond}, marks.period)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "NIS,Student,Subject,Score", lines[0])
	assert.Equal(t, "001,Siti,Mathematics,88.00", lines[1])
	assert.Equal(t, "002,Budi,Mathematics,74.50", lines[2])
}

func TestReportClassMarkSheetPDF(t *testing.T) {
	marks := &mockReportMarks{marks: []models.SubjectMarkDetail{
		{SubjectMark: models.SubjectMark{SubjectName: "Mathematics", Score: 88}, StudentName: "Siti", NIS: "001"},
	}}
	svc := NewReportService(marks, reportResolver(), zap.NewNop())
	class := models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}

	payload, contentType, filename, err := svc.ClassMarkSheet(context.Background(), class, "Mathematics", ReportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "marks_11_IPA_B_2026_SECOND.pdf", filename)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestReportClassMarkSheetValidation(t *testing.T) {
	svc := NewReportService(&mockReportMarks{}, reportResolver(), zap.NewNop())

	_, _, _, err := svc.ClassMarkSheet(context.Background(), models.ClassRef{}, "Mathematics", ReportFormatCSV)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)

	_, _, _, err = svc.ClassMarkSheet(context.Background(), models.ClassRef{Grade: "11", Major: "IPA", Section: "B"}, "Mathematics", ReportFormat("xlsx"))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
