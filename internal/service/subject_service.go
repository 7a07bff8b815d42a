package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type subjectLister interface {
	List(ctx context.Context) ([]models.Subject, error)
}

// SubjectService serves subject listings for staff.
type SubjectService struct {
	repo   subjectLister
	logger *zap.Logger
}

// NewSubjectService constructs SubjectService.
func NewSubjectService(repo subjectLister, logger *zap.Logger) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, logger: logger}
}

// List returns active subjects.
func (s *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}
