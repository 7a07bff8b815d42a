package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type teacherAssignmentLister interface {
	ListAssignments(ctx context.Context, teacherID string) ([]models.TeachingAssignment, error)
}

// TeacherService serves teacher-scoped reads.
type TeacherService struct {
	repo   teacherAssignmentLister
	logger *zap.Logger
}

// NewTeacherService constructs TeacherService.
func NewTeacherService(repo teacherAssignmentLister, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, logger: logger}
}

// Assignments returns the caller's teaching assignments.
func (s *TeacherService) Assignments(ctx context.Context, session *models.ScopedSession) ([]models.TeachingAssignment, error) {
	if session == nil || session.Teacher == nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "teacher session required")
	}
	assignments, err := s.repo.ListAssignments(ctx, session.Teacher.TeacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}
