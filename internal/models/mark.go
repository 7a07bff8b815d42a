package models

import (
	"time"

	"github.com/sekolahku/akademik-api/internal/academic"
)

// SubjectMark is one academic record row. The tuple
// (student_id, subject_name, academic_year, semester) carries a UNIQUE
// constraint in the schema; rows are provisioned at term setup and only
// ever updated here.
type SubjectMark struct {
	ID           string            `db:"id" json:"id"`
	StudentID    string            `db:"student_id" json:"student_id"`
	SubjectName  string            `db:"subject_name" json:"subject_name"`
	AcademicYear string            `db:"academic_year" json:"academic_year"`
	Semester     academic.Semester `db:"semester" json:"semester"`
	Score        float64           `db:"score" json:"score"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

// Period returns the record's academic period.
func (m SubjectMark) Period() academic.Period {
	return academic.Period{AcademicYear: m.AcademicYear, Semester: m.Semester}
}

// SubjectMarkDetail enriches a mark row with student metadata for listings.
type SubjectMarkDetail struct {
	SubjectMark
	StudentName string `db:"student_name" json:"student_name"`
	NIS         string `db:"nis" json:"nis"`
}

// MarkBatchItem is one line of a submitted mark batch. The academic period
// is supplied by the server at submission time, never by the client.
type MarkBatchItem struct {
	StudentID   string  `json:"student_id" validate:"required"`
	SubjectName string  `json:"subject_name" validate:"required"`
	Score       float64 `json:"score" validate:"gte=0,lte=100"`
}

// MarkBatchResult confirms a committed batch.
type MarkBatchResult struct {
	Updated      int               `json:"updated"`
	AcademicYear string            `json:"academic_year"`
	Semester     academic.Semester `json:"semester"`
	SubmittedAt  time.Time         `json:"submitted_at"`
}
