package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/pkg/export"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type reportMarksReader interface {
	ListByClassSubject(ctx context.Context, class models.ClassRef, subjectName string, period academic.Period) ([]models.SubjectMarkDetail, error)
}

// ReportFormat selects the rendering of a mark sheet.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// ReportService renders class mark sheets for staff.
type ReportService struct {
	marks    reportMarksReader
	resolver *academic.Resolver
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(marks reportMarksReader, resolver *academic.Resolver, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		marks:    marks,
		resolver: resolver,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// ClassMarkSheet renders the current-period marks of one class and subject
// in the requested format, returning the bytes, content type and filename.
func (s *ReportService) ClassMarkSheet(ctx context.Context, class models.ClassRef, subjectName string, format ReportFormat) ([]byte, string, string, error) {
	if class.Grade == "" || class.Major == "" || class.Section == "" || subjectName == "" {
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, "grade, major, section and subject are required")
	}

	period := s.resolver.Current()
	marks, err := s.marks.ListByClassSubject(ctx, class, subjectName, period)
	if err != nil {
		return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mark sheet")
	}

	dataset := export.Dataset{
		Headers: []string{"NIS", "Student", "Subject", "Score"},
		Rows:    make([]map[string]string, 0, len(marks)),
	}
	for _, mark := range marks {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"NIS":     mark.NIS,
			"Student": mark.StudentName,
			"Subject": mark.SubjectName,
			"Score":   strconv.FormatFloat(mark.Score, 'f', 2, 64),
		})
	}

	title := fmt.Sprintf("%s %s %s", subjectName, class.Label(), period)
	base := fmt.Sprintf("marks_%s_%s_%s_%s_%s", class.Grade, class.Major, class.Section, period.AcademicYear, period.Semester)

	switch format {
	case ReportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", base + ".csv", nil
	case ReportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", base + ".pdf", nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, "unsupported report format")
	}
}
