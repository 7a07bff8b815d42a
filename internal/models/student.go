package models

import "time"

// ClassRef is the class binding of a student: grade level, study major and
// section letter (e.g. 11 / IPA / B).
type ClassRef struct {
	Grade   string `db:"grade" json:"grade"`
	Major   string `db:"major" json:"major"`
	Section string `db:"section" json:"section"`
}

// Label renders the class the way report sheets print it.
func (c ClassRef) Label() string {
	return c.Grade + " " + c.Major + " " + c.Section
}

// Student represents a learner registered in the institution.
type Student struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	NIS       string    `db:"nis" json:"nis"`
	FullName  string    `db:"full_name" json:"full_name"`
	Grade     string    `db:"grade" json:"grade"`
	Major     string    `db:"major" json:"major"`
	Section   string    `db:"section" json:"section"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Class returns the student's class binding.
func (s Student) Class() ClassRef {
	return ClassRef{Grade: s.Grade, Major: s.Major, Section: s.Section}
}
