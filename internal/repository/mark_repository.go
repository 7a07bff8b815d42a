package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/pkg/database"
)

// MarkRepository handles subject mark persistence. Lookups and mutations
// used by the batch coordinator run on the caller's transaction; listing
// queries run on the pool.
type MarkRepository struct {
	db *sqlx.DB
}

// NewMarkRepository creates a new mark repository.
func NewMarkRepository(db *sqlx.DB) *MarkRepository {
	return &MarkRepository{db: db}
}

const markColumns = `id, student_id, subject_name, academic_year, semester, score, created_at, updated_at`

// FindForUpdate locates the unique mark row for the composite key and locks
// it for the remainder of the transaction. The schema enforces uniqueness on
// (student_id, subject_name, academic_year, semester); a missing row is
// returned as sql.ErrNoRows, never substituted with another period.
func (r *MarkRepository) FindForUpdate(ctx context.Context, tx database.Tx, studentID, subjectName string, period academic.Period) (*models.SubjectMark, error) {
	query := fmt.Sprintf(`SELECT %s FROM subject_marks
        WHERE student_id = $1 AND subject_name = $2 AND academic_year = $3 AND semester = $4
        FOR UPDATE`, markColumns)
	var mark models.SubjectMark
	if err := tx.GetContext(ctx, &mark, query, studentID, subjectName, period.AcademicYear, period.Semester); err != nil {
		return nil, err
	}
	return &mark, nil
}

// UpdateScore applies a new score to an existing mark row. Update-only: a
// zero row count means the row vanished after validation and is reported.
func (r *MarkRepository) UpdateScore(ctx context.Context, tx database.Tx, id string, score float64, now time.Time) error {
	result, err := tx.ExecContext(ctx, "UPDATE subject_marks SET score = $1, updated_at = $2 WHERE id = $3", score, now, id)
	if err != nil {
		return fmt.Errorf("update mark score: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check updated mark rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("mark %s disappeared during update", id)
	}
	return nil
}

// ListByStudent returns a student's marks for one academic period.
func (r *MarkRepository) ListByStudent(ctx context.Context, studentID string, period academic.Period) ([]models.SubjectMark, error) {
	query := fmt.Sprintf(`SELECT %s FROM subject_marks
        WHERE student_id = $1 AND academic_year = $2 AND semester = $3
        ORDER BY subject_name ASC`, markColumns)
	var marks []models.SubjectMark
	if err := r.db.SelectContext(ctx, &marks, query, studentID, period.AcademicYear, period.Semester); err != nil {
		return nil, fmt.Errorf("list marks by student: %w", err)
	}
	return marks, nil
}

// ListByClassSubject returns the mark sheet of one class for a subject in
// the given period, enriched with student identity for reporting.
func (r *MarkRepository) ListByClassSubject(ctx context.Context, class models.ClassRef, subjectName string, period academic.Period) ([]models.SubjectMarkDetail, error) {
	const query = `SELECT m.id, m.student_id, m.subject_name, m.academic_year, m.semester, m.score, m.created_at, m.updated_at,
               s.full_name AS student_name, s.nis
        FROM subject_marks m
        JOIN students s ON s.id = m.student_id
        WHERE s.grade = $1 AND s.major = $2 AND s.section = $3
          AND m.subject_name = $4 AND m.academic_year = $5 AND m.semester = $6
        ORDER BY s.full_name ASC`
	var marks []models.SubjectMarkDetail
	if err := r.db.SelectContext(ctx, &marks, query, class.Grade, class.Major, class.Section, subjectName, period.AcademicYear, period.Semester); err != nil {
		return nil, fmt.Errorf("list class mark sheet: %w", err)
	}
	return marks, nil
}
