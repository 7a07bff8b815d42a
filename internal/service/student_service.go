package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type studentMarksReader interface {
	ListByStudent(ctx context.Context, studentID string, period academic.Period) ([]models.SubjectMark, error)
}

type attendanceSummarizer interface {
	Summary(ctx context.Context, studentID string) (*models.AttendanceSummary, error)
}

type behaviorSummarizer interface {
	Summary(ctx context.Context, studentID string) (*models.BehaviorSummary, error)
}

// StudentDashboard is the aggregate a student (or their parent) sees for the
// current academic period.
type StudentDashboard struct {
	StudentID  string                    `json:"student_id"`
	FullName   string                    `json:"full_name"`
	Class      models.ClassRef           `json:"class"`
	Period     academic.Period           `json:"period"`
	Marks      []models.SubjectMark      `json:"marks"`
	Attendance *models.AttendanceSummary `json:"attendance"`
	Discipline *models.BehaviorSummary   `json:"discipline"`
}

// StudentService serves student-scoped reads.
type StudentService struct {
	marks      studentMarksReader
	attendance attendanceSummarizer
	behavior   behaviorSummarizer
	resolver   *academic.Resolver
	cache      *CacheService
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(marks studentMarksReader, attendance attendanceSummarizer, behavior behaviorSummarizer, resolver *academic.Resolver, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{
		marks:      marks,
		attendance: attendance,
		behavior:   behavior,
		resolver:   resolver,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Dashboard aggregates current-period marks, attendance and disciplinary
// points for a student. Results are cached per student and period.
func (s *StudentService) Dashboard(ctx context.Context, studentID, fullName string, class models.ClassRef) (*StudentDashboard, error) {
	period := s.resolver.Current()
	cacheKey := fmt.Sprintf("dashboard:student:%s:%s:%s", studentID, period.AcademicYear, period.Semester)

	var cached StudentDashboard
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	marks, err := s.marks.ListByStudent(ctx, studentID, period)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load marks")
	}
	attendance, err := s.attendance.Summary(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance summary")
	}
	discipline, err := s.behavior.Summary(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load discipline summary")
	}

	dashboard := &StudentDashboard{
		StudentID:  studentID,
		FullName:   fullName,
		Class:      class,
		Period:     period,
		Marks:      marks,
		Attendance: attendance,
		Discipline: discipline,
	}

	if err := s.cache.Set(ctx, cacheKey, dashboard, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache dashboard", zap.String("student_id", studentID), zap.Error(err))
	}

	return dashboard, nil
}

// Marks returns the student's marks for the current period.
func (s *StudentService) Marks(ctx context.Context, studentID string) ([]models.SubjectMark, error) {
	marks, err := s.marks.ListByStudent(ctx, studentID, s.resolver.Current())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load marks")
	}
	return marks, nil
}
