package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sekolahku/akademik-api/internal/models"
)

// AttendanceRepository handles persistence for daily attendance records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns daily attendance rows matching the provided filter.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.DailyAttendance, int, error) {
	base := "FROM daily_attendance"
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.StudentID != "" {
		where = append(where, fmt.Sprintf("student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.Status != nil && filter.Status.Valid() {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.DateFrom != nil {
		where = append(where, fmt.Sprintf("date >= $%d", len(args)+1))
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where = append(where, fmt.Sprintf("date <= $%d", len(args)+1))
		args = append(args, *filter.DateTo)
	}
	whereClause := strings.Join(where, " AND ")
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size
	query := fmt.Sprintf(`SELECT id, student_id, date, status, notes, created_at, updated_at
%s WHERE %s ORDER BY date DESC LIMIT %d OFFSET %d`, base, whereClause, size, offset)
	var records []models.DailyAttendance
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list attendance: %w", err)
	}
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", base, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count attendance: %w", err)
	}
	return records, total, nil
}

// Summary aggregates attendance counts for a student.
func (r *AttendanceRepository) Summary(ctx context.Context, studentID string) (*models.AttendanceSummary, error) {
	const query = `SELECT
        COALESCE(SUM(CASE WHEN status = 'H' THEN 1 ELSE 0 END),0) AS present,
        COALESCE(SUM(CASE WHEN status = 'S' THEN 1 ELSE 0 END),0) AS sick,
        COALESCE(SUM(CASE WHEN status = 'I' THEN 1 ELSE 0 END),0) AS excused,
        COALESCE(SUM(CASE WHEN status = 'A' THEN 1 ELSE 0 END),0) AS absent
FROM daily_attendance WHERE student_id = $1`
	summary := models.AttendanceSummary{StudentID: studentID}
	if err := r.db.QueryRowxContext(ctx, query, studentID).Scan(&summary.Present, &summary.Sick, &summary.Excused, &summary.Absent); err != nil {
		return nil, fmt.Errorf("attendance summary: %w", err)
	}
	total := summary.Present + summary.Sick + summary.Excused + summary.Absent
	if total > 0 {
		summary.Rate = float64(summary.Present) / float64(total)
	}
	return &summary, nil
}
