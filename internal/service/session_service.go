package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type sessionStudentRepo interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByUserID(ctx context.Context, userID string) (*models.Student, error)
}

type sessionTeacherRepo interface {
	FindByUserID(ctx context.Context, userID string) (*models.Teacher, error)
}

type sessionParentRepo interface {
	FindByUserID(ctx context.Context, userID string) (*models.Parent, error)
}

// SessionService is the single entry point turning an authenticated identity
// into a role-scoped session. Every protected endpoint states the scope it
// requires and receives a ScopedSession bound to the caller's own data.
type SessionService struct {
	students sessionStudentRepo
	teachers sessionTeacherRepo
	parents  sessionParentRepo
	logger   *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(students sessionStudentRepo, teachers sessionTeacherRepo, parents sessionParentRepo, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{students: students, teachers: teachers, parents: parents, logger: logger}
}

// Validate checks the caller's role against the required scope and resolves
// the matching role profile. Role mismatch is Forbidden; a missing profile
// (or a parent whose child link is broken) is NotFound. The returned session
// is read-only and lives for the request.
func (s *SessionService) Validate(ctx context.Context, claims *models.JWTClaims, required models.RoleScope) (*models.ScopedSession, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if !required.Satisfies(claims.Role) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "role not permitted for this resource")
	}

	session := &models.ScopedSession{UserID: claims.UserID, Role: claims.Role}

	switch {
	case required == models.ScopeStudent:
		student, err := s.students.FindByUserID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "student profile not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student profile")
		}
		session.Student = &models.StudentScope{
			StudentID: student.ID,
			FullName:  student.FullName,
			Class:     student.Class(),
		}

	case required == models.ScopeParent:
		parent, err := s.parents.FindByUserID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "parent profile not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load parent profile")
		}
		if parent.StudentID == nil || *parent.StudentID == "" {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "linked student not found")
		}
		child, err := s.students.FindByID(ctx, *parent.StudentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "linked student not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load linked student")
		}
		session.Parent = &models.ParentScope{
			ParentID:  parent.ID,
			StudentID: child.ID,
			ChildName: child.FullName,
			Class:     child.Class(),
		}

	case required == models.ScopeTeacher || claims.Role == models.RoleTeacher:
		teacher, err := s.teachers.FindByUserID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher profile not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher profile")
		}
		session.Teacher = &models.TeacherScope{TeacherID: teacher.ID, FullName: teacher.FullName}

		// ScopeStaff with a vice principal or principal carries no extra
		// scope data; the role itself is the authorization.
	}

	return session, nil
}
