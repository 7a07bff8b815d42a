package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type behaviorRepo interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.BehaviorNote, error)
	Create(ctx context.Context, note *models.BehaviorNote) error
	Summary(ctx context.Context, studentID string) (*models.BehaviorSummary, error)
}

// CreateBehaviorNoteRequest is the staff payload adding a disciplinary note.
type CreateBehaviorNoteRequest struct {
	StudentID   string    `json:"student_id" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	NoteType    string    `json:"note_type" validate:"required,oneof=+ - 0"`
	Points      int       `json:"points"`
	Description string    `json:"description" validate:"required"`
}

// BehaviorService manages disciplinary notes and point summaries.
type BehaviorService struct {
	repo      behaviorRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBehaviorService constructs BehaviorService.
func NewBehaviorService(repo behaviorRepo, validate *validator.Validate, logger *zap.Logger) *BehaviorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BehaviorService{repo: repo, validator: validate, logger: logger}
}

// ListForStudent returns a student's disciplinary notes.
func (s *BehaviorService) ListForStudent(ctx context.Context, studentID string) ([]models.BehaviorNote, error) {
	notes, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list behavior notes")
	}
	return notes, nil
}

// Summary returns the aggregated disciplinary points for a student.
func (s *BehaviorService) Summary(ctx context.Context, studentID string) (*models.BehaviorSummary, error) {
	summary, err := s.repo.Summary(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to summarise behavior")
	}
	return summary, nil
}

// Create records a disciplinary note on behalf of a staff member.
func (s *BehaviorService) Create(ctx context.Context, createdBy string, req CreateBehaviorNoteRequest) (*models.BehaviorNote, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid behavior note payload")
	}
	note := &models.BehaviorNote{
		StudentID:   req.StudentID,
		Date:        req.Date,
		NoteType:    models.BehaviorNoteType(req.NoteType),
		Points:      req.Points,
		Description: req.Description,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create behavior note")
	}
	return note, nil
}
