package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/pkg/database"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type markRepo interface {
	FindForUpdate(ctx context.Context, tx database.Tx, studentID, subjectName string, period academic.Period) (*models.SubjectMark, error)
	UpdateScore(ctx context.Context, tx database.Tx, id string, score float64, now time.Time) error
	ListByStudent(ctx context.Context, studentID string, period academic.Period) ([]models.SubjectMark, error)
	ListByClassSubject(ctx context.Context, class models.ClassRef, subjectName string, period academic.Period) ([]models.SubjectMarkDetail, error)
}

type markStudentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type markScopeChecker interface {
	HasAssignment(ctx context.Context, teacherID, subjectName string, class models.ClassRef) (bool, error)
	CountAssignments(ctx context.Context, teacherID string) (int, error)
}

type markAuditRecorder interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// SubmitMarksRequest is one teacher action updating a set of mark records.
type SubmitMarksRequest struct {
	Items []models.MarkBatchItem `json:"items" validate:"required,min=1,dive"`
}

// MarkService coordinates batch mark updates. A batch is a single unit of
// work: every item is validated against the current academic period in
// submission order, and the first failure rolls the whole transaction back.
type MarkService struct {
	uow       database.UnitOfWork
	marks     markRepo
	students  markStudentReader
	teachers  markScopeChecker
	resolver  *academic.Resolver
	audit     markAuditRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMarkService constructs MarkService.
func NewMarkService(uow database.UnitOfWork, marks markRepo, students markStudentReader, teachers markScopeChecker, resolver *academic.Resolver, audit markAuditRecorder, validate *validator.Validate, logger *zap.Logger) *MarkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarkService{
		uow:       uow,
		marks:     marks,
		students:  students,
		teachers:  teachers,
		resolver:  resolver,
		audit:     audit,
		validator: validate,
		logger:    logger,
	}
}

type markHandle struct {
	id    string
	score float64
}

// SubmitBatch validates and applies a mark batch atomically. The academic
// period is resolved once per batch so every item shares the same period
// even across a semester boundary tick. No partial state survives a failure.
func (s *MarkService) SubmitBatch(ctx context.Context, session *models.ScopedSession, req SubmitMarksRequest) (*models.MarkBatchResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mark batch payload")
	}
	if session == nil || session.Teacher == nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "teacher session required")
	}

	// An empty assignment scope is never treated as "all classes".
	count, err := s.teachers.CountAssignments(ctx, session.Teacher.TeacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teaching scope")
	}
	if count == 0 {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "no teaching assignments for this teacher")
	}

	period := s.resolver.Current()
	now := time.Now().UTC()

	err = s.uow.WithinTx(ctx, func(tx database.Tx) error {
		handles := make([]markHandle, 0, len(req.Items))

		for _, item := range req.Items {
			student, err := s.students.FindByID(ctx, item.StudentID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("student %s not found", item.StudentID))
				}
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
			}

			allowed, err := s.teachers.HasAssignment(ctx, session.Teacher.TeacherID, item.SubjectName, student.Class())
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teaching scope")
			}
			if !allowed {
				return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("not assigned to teach %s for class %s", item.SubjectName, student.Class().Label()))
			}

			mark, err := s.marks.FindForUpdate(ctx, tx, item.StudentID, item.SubjectName, period)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("mark record not found for student %s, subject %s, period %s", item.StudentID, item.SubjectName, period))
				}
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to locate mark record")
			}

			handles = append(handles, markHandle{id: mark.ID, score: item.Score})
		}

		for _, handle := range handles {
			if err := s.marks.UpdateScore(ctx, tx, handle.id, handle.score, now); err != nil {
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to apply mark update")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, session, len(req.Items), period)

	s.logger.Info("mark batch committed",
		zap.String("teacher_id", session.Teacher.TeacherID),
		zap.Int("items", len(req.Items)),
		zap.String("period", period.String()),
	)

	return &models.MarkBatchResult{
		Updated:      len(req.Items),
		AcademicYear: period.AcademicYear,
		Semester:     period.Semester,
		SubmittedAt:  now,
	}, nil
}

// ListForAssignment returns the mark sheet for one of the teacher's
// assignments in the current period.
func (s *MarkService) ListForAssignment(ctx context.Context, session *models.ScopedSession, subjectName string, class models.ClassRef) ([]models.SubjectMarkDetail, error) {
	if session == nil || session.Teacher == nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "teacher session required")
	}
	allowed, err := s.teachers.HasAssignment(ctx, session.Teacher.TeacherID, subjectName, class)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teaching scope")
	}
	if !allowed {
		return nil, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("not assigned to teach %s for class %s", subjectName, class.Label()))
	}

	marks, err := s.marks.ListByClassSubject(ctx, class, subjectName, s.resolver.Current())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list marks")
	}
	return marks, nil
}

// ListForStudent returns a student's own marks for the current period.
func (s *MarkService) ListForStudent(ctx context.Context, studentID string) ([]models.SubjectMark, error) {
	marks, err := s.marks.ListByStudent(ctx, studentID, s.resolver.Current())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list marks")
	}
	return marks, nil
}

func (s *MarkService) recordAudit(ctx context.Context, session *models.ScopedSession, items int, period academic.Period) {
	if s.audit == nil {
		return
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"items":         items,
		"academic_year": period.AcademicYear,
		"semester":      period.Semester,
	})
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &session.UserID,
		Action:     models.AuditActionMarkSubmit,
		Resource:   "marks",
		ResourceID: &session.Teacher.TeacherID,
		NewValues:  payload,
	}); err != nil {
		s.logger.Warn("failed to record mark submit audit log", zap.Error(err))
	}
}
