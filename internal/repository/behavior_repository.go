package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sekolahku/akademik-api/internal/models"
)

// BehaviorRepository manages persistence for disciplinary notes.
type BehaviorRepository struct {
	db *sqlx.DB
}

// NewBehaviorRepository constructs a new repository.
func NewBehaviorRepository(db *sqlx.DB) *BehaviorRepository {
	return &BehaviorRepository{db: db}
}

// ListByStudent returns a student's disciplinary notes, newest first.
func (r *BehaviorRepository) ListByStudent(ctx context.Context, studentID string) ([]models.BehaviorNote, error) {
	const query = `SELECT id, student_id, date, note_type, points, description, created_by, created_at, updated_at
        FROM behavior_notes WHERE student_id = $1
        ORDER BY date DESC, created_at DESC`
	var notes []models.BehaviorNote
	if err := r.db.SelectContext(ctx, &notes, query, studentID); err != nil {
		return nil, fmt.Errorf("list behavior notes: %w", err)
	}
	return notes, nil
}

// Create inserts a new disciplinary note.
func (r *BehaviorRepository) Create(ctx context.Context, note *models.BehaviorNote) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	const query = `INSERT INTO behavior_notes (id, student_id, date, note_type, points, description, created_by, created_at, updated_at)
        VALUES (:id, :student_id, :date, :note_type, :points, :description, :created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("create behavior note: %w", err)
	}
	return nil
}

// Summary aggregates disciplinary metrics for a student.
func (r *BehaviorRepository) Summary(ctx context.Context, studentID string) (*models.BehaviorSummary, error) {
	const query = `SELECT COALESCE(SUM(points),0) AS total_points,
        COALESCE(SUM(CASE WHEN note_type = '+' THEN 1 ELSE 0 END),0) AS positive_count,
        COALESCE(SUM(CASE WHEN note_type = '-' THEN 1 ELSE 0 END),0) AS negative_count,
        COALESCE(SUM(CASE WHEN note_type = '0' THEN 1 ELSE 0 END),0) AS neutral_count,
        MAX(updated_at) AS last_updated_at
FROM behavior_notes
WHERE student_id = $1`
	var summary models.BehaviorSummary
	summary.StudentID = studentID
	var lastUpdated sql.NullTime
	if err := r.db.QueryRowxContext(ctx, query, studentID).Scan(&summary.TotalPoints, &summary.PositiveCount, &summary.NegativeCount, &summary.NeutralCount, &lastUpdated); err != nil {
		return nil, fmt.Errorf("behavior summary: %w", err)
	}
	if lastUpdated.Valid {
		summary.LastUpdatedAt = &lastUpdated.Time
	}
	return &summary, nil
}
