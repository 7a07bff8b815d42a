package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sekolahku/akademik-api/internal/models"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
)

type mockBehaviorRepo struct {
	notes   []models.BehaviorNote
	created []*models.BehaviorNote
	summary *models.BehaviorSummary
}

func (m *mockBehaviorRepo) ListByStudent(ctx context.Context, studentID string) ([]models.BehaviorNote, error) {
	return m.notes, nil
}

func (m *mockBehaviorRepo) Create(ctx context.Context, note *models.BehaviorNote) error {
	m.created = append(m.created, note)
	return nil
}

func (m *mockBehaviorRepo) Summary(ctx context.Context, studentID string) (*models.BehaviorSummary, error) {
	return m.summary, nil
}

func TestBehaviorCreateNote(t *testing.T) {
	repo := &mockBehaviorRepo{}
	svc := NewBehaviorService(repo, nil, zap.NewNop())

	note, err := svc.Create(context.Background(), "user-staff", CreateBehaviorNoteRequest{
		StudentID:   "student-1",
		Date:        time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		NoteType:    "-",
		Points:      -10,
		Description: "Late three times this week",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BehaviorNoteNegative, note.NoteType)
	assert.Equal(t, "user-staff", note.CreatedBy)
	require.Len(t, repo.created, 1)
}

func TestBehaviorCreateNoteRejectsUnknownType(t *testing.T) {
	svc := NewBehaviorService(&mockBehaviorRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), "user-staff", CreateBehaviorNoteRequest{
		StudentID:   "student-1",
		Date:        time.Now(),
		NoteType:    "x",
		Description: "typo",
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestBehaviorSummaryPassthrough(t *testing.T) {
	repo := &mockBehaviorRepo{summary: &models.BehaviorSummary{StudentID: "student-1", TotalPoints: 15, PositiveCount: 2}}
	svc := NewBehaviorService(repo, nil, zap.NewNop())

	summary, err := svc.Summary(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Equal(t, 15, summary.TotalPoints)
}
