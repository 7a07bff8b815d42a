package models

import "time"

// Teacher represents a teaching staff member.
type Teacher struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	NIP       string    `db:"nip" json:"nip"`
	FullName  string    `db:"full_name" json:"full_name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TeachingAssignment binds a teacher to a subject taught in one class. It is
// the grading scope checked before marks are accepted.
type TeachingAssignment struct {
	ID          string    `db:"id" json:"id"`
	TeacherID   string    `db:"teacher_id" json:"teacher_id"`
	SubjectName string    `db:"subject_name" json:"subject_name"`
	Grade       string    `db:"grade" json:"grade"`
	Major       string    `db:"major" json:"major"`
	Section     string    `db:"section" json:"section"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Class returns the class the assignment covers.
func (a TeachingAssignment) Class() ClassRef {
	return ClassRef{Grade: a.Grade, Major: a.Major, Section: a.Section}
}
