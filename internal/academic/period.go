package academic

import (
	"fmt"
	"time"
)

// Semester labels the half of the academic calendar a date falls in.
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
)

// Period identifies the academic period marks are recorded against. It is
// always derived from the clock, never stored on its own.
type Period struct {
	AcademicYear string   `json:"academic_year"`
	Semester     Semester `json:"semester"`
}

// String renders the period for logs and error messages.
func (p Period) String() string {
	return fmt.Sprintf("%s/%s", p.AcademicYear, p.Semester)
}

// Cutoff is the month/day boundary between the two semesters of a calendar
// year. Dates strictly before the cutoff belong to the first semester.
type Cutoff struct {
	Month time.Month
	Day   int
}

// Resolver derives the academic period from an injected clock.
type Resolver struct {
	cutoff Cutoff
	now    func() time.Time
}

// NewResolver builds a Resolver. A nil clock falls back to time.Now.
func NewResolver(cutoff Cutoff, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{cutoff: cutoff, now: now}
}

// Current resolves the period for the resolver's clock.
func (r *Resolver) Current() Period {
	return r.Resolve(r.now())
}

// Resolve maps an instant to its academic period. The academic year is the
// four-digit calendar year; the semester flips at the configured cutoff.
func (r *Resolver) Resolve(t time.Time) Period {
	year := fmt.Sprintf("%04d", t.Year())

	semester := SemesterSecond
	if t.Month() < r.cutoff.Month ||
		(t.Month() == r.cutoff.Month && t.Day() < r.cutoff.Day) {
		semester = SemesterFirst
	}

	return Period{AcademicYear: year, Semester: semester}
}
