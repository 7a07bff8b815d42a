package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sekolahku/akademik-api/internal/models"
)

// TeacherRepository handles teacher and teaching-assignment persistence.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository creates a new teacher repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindByUserID returns the teacher profile owned by a user account.
func (r *TeacherRepository) FindByUserID(ctx context.Context, userID string) (*models.Teacher, error) {
	const query = `SELECT id, user_id, nip, full_name, active, created_at, updated_at
        FROM teachers WHERE user_id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, userID); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListAssignments returns the teaching assignments owned by a teacher.
func (r *TeacherRepository) ListAssignments(ctx context.Context, teacherID string) ([]models.TeachingAssignment, error) {
	const query = `SELECT id, teacher_id, subject_name, grade, major, section, created_at
        FROM teaching_assignments WHERE teacher_id = $1
        ORDER BY subject_name ASC, grade ASC, section ASC`
	var assignments []models.TeachingAssignment
	if err := r.db.SelectContext(ctx, &assignments, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teaching assignments: %w", err)
	}
	return assignments, nil
}

// HasAssignment checks whether the teacher teaches the subject in the class.
func (r *TeacherRepository) HasAssignment(ctx context.Context, teacherID, subjectName string, class models.ClassRef) (bool, error) {
	const query = `SELECT 1 FROM teaching_assignments
        WHERE teacher_id = $1 AND subject_name = $2 AND grade = $3 AND major = $4 AND section = $5
        LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID, subjectName, class.Grade, class.Major, class.Section); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teaching assignment: %w", err)
	}
	return true, nil
}

// CountAssignments returns the number of assignments a teacher owns.
func (r *TeacherRepository) CountAssignments(ctx context.Context, teacherID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM teaching_assignments WHERE teacher_id = $1", teacherID); err != nil {
		return 0, fmt.Errorf("count teaching assignments: %w", err)
	}
	return count, nil
}
