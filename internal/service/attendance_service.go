package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type attendanceRepo interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.DailyAttendance, int, error)
	Summary(ctx context.Context, studentID string) (*models.AttendanceSummary, error)
}

// AttendanceService serves attendance reads for scoped students.
type AttendanceService struct {
	repo   attendanceRepo
	logger *zap.Logger
}

// NewAttendanceService constructs AttendanceService.
func NewAttendanceService(repo attendanceRepo, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, logger: logger}
}

// List returns attendance rows for the filter along with pagination info.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.DailyAttendance, *models.Pagination, error) {
	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	return records, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Summary returns aggregated attendance counts for a student.
func (s *AttendanceService) Summary(ctx context.Context, studentID string) (*models.AttendanceSummary, error) {
	summary, err := s.repo.Summary(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to summarise attendance")
	}
	return summary, nil
}
